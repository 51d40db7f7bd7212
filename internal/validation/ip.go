package validation

import (
	"net"
	"net/netip"
)

// reservedPrefixes are non-routable ranges that netip has no predicate for.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
}

// IPValidator rejects hosts that are private or reserved IP literals.
// Hostnames are not resolved.
type IPValidator struct{}

func NewIPValidator() *IPValidator {
	return &IPValidator{}
}

func (v *IPValidator) ValidateHost(host string) error {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	} else if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		hostname = host[1 : len(host)-1]
	}

	addr, err := netip.ParseAddr(hostname)
	if err != nil {
		return nil
	}
	return v.validateIP(addr)
}

func (v *IPValidator) validateIP(addr netip.Addr) error {
	addr = addr.Unmap()

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, prefix := range reservedPrefixes {
		if prefix.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}
	return nil
}
