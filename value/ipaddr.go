package value

import (
	"fmt"
	"net/netip"
	"strings"
)

// IPAddress is an IPv4 or IPv6 address without a zone. The zero value is
// 0.0.0.0.
type IPAddress struct {
	addr netip.Addr
}

func IPv4(a, b, c, d byte) IPAddress {
	return IPAddress{addr: netip.AddrFrom4([4]byte{a, b, c, d})}
}

// AddrFrom wraps a, which must be valid and have no zone.
func AddrFrom(a netip.Addr) (IPAddress, error) {
	if !a.IsValid() {
		return IPAddress{}, fmt.Errorf("%w: invalid netip.Addr", ErrInvalidAddress)
	}
	if a.Zone() != "" {
		return IPAddress{}, fmt.Errorf("%w: zone %q not supported", ErrInvalidAddress, a.Zone())
	}
	return IPAddress{addr: a}, nil
}

// MustParseIPAddress is like ParseIPAddress but panics on error.
func MustParseIPAddress(s string) IPAddress {
	ip, err := ParseIPAddress(s)
	if err != nil {
		panic(err)
	}
	return ip
}

func (IPAddress) Kind() Kind { return KindIPAddress }
func (IPAddress) isValue()   {}

func (ip IPAddress) Addr() netip.Addr {
	if !ip.addr.IsValid() {
		return netip.IPv4Unspecified()
	}
	return ip.addr
}

func (ip IPAddress) Is4() bool {
	return ip.Addr().Is4()
}

// As16 returns the fixed width form; IPv4 addresses are IPv4-mapped.
func (ip IPAddress) As16() [16]byte {
	return ip.Addr().As16()
}

// Render returns dotted decimal for IPv4 and RFC 5952 text for IPv6.
func (ip IPAddress) Render() string {
	return ip.Addr().String()
}

func (ip IPAddress) Equal(v Value) bool {
	o, ok := v.(IPAddress)
	return ok && o.Addr() == ip.Addr()
}

func (ip IPAddress) MarshalText() ([]byte, error) {
	return []byte(ip.Render()), nil
}

func (ip *IPAddress) UnmarshalText(d []byte) error {
	v, err := ParseIPAddress(string(d))
	if err != nil {
		return err
	}
	*ip = v
	return nil
}

// ParseIPAddress tries an IPv4 dotted quad first, then IPv6 including "::"
// compression and an embedded IPv4 tail.
func ParseIPAddress(s string) (IPAddress, error) {
	if s == "" {
		return IPAddress{}, ErrEmpty
	}
	if !strings.Contains(s, ":") {
		a, err := netip.ParseAddr(s)
		if err != nil || !a.Is4() {
			return IPAddress{}, fmt.Errorf("%w: %q is not a dotted quad", ErrInvalidAddress, s)
		}
		return IPAddress{addr: a}, nil
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddress{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if !a.Is6() || a.Zone() != "" {
		return IPAddress{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return IPAddress{addr: a}, nil
}
