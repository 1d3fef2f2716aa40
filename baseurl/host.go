package baseurl

import (
	"net/netip"
	"strings"

	"golang.org/x/net/idna"
)

// HostKind identifies the form of a URL host.
type HostKind int

const (
	// HostDomain is a domain name, or an opaque host of a non-special scheme.
	HostDomain HostKind = iota
	// HostIPv4 is an IPv4 address.
	HostIPv4
	// HostIPv6 is an IPv6 address.
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	default:
		return "domain"
	}
}

// Host is the parsed host of a BaseURL. Domain is set for HostDomain, IP for
// the two address kinds.
type Host struct {
	Kind   HostKind
	Domain string
	IP     netip.Addr
}

// String returns the host as it appears in the URL serialization. IPv6
// addresses are bracketed.
func (h Host) String() string {
	switch h.Kind {
	case HostIPv4:
		return h.IP.String()
	case HostIPv6:
		return "[" + h.IP.String() + "]"
	default:
		return h.Domain
	}
}

// Unicode returns the host for display, with punycode labels converted back
// to Unicode. Addresses and hosts that fail conversion are returned as is.
func (h Host) Unicode() string {
	if h.Kind != HostDomain {
		return h.String()
	}
	s, err := idna.Display.ToUnicode(h.Domain)
	if err != nil {
		return h.Domain
	}
	return s
}

// classifyHost derives the host kind from the serialized hostname. The parser
// has already normalized the text: IPv6 is bracketed and compressed, and IPv4
// on special schemes is dotted decimal. Hosts of non-special schemes are
// opaque and always reported as domains.
func classifyHost(hostname string, special bool) Host {
	if strings.HasPrefix(hostname, "[") {
		if ip, err := netip.ParseAddr(strings.Trim(hostname, "[]")); err == nil {
			return Host{Kind: HostIPv6, IP: ip}
		}
	}
	if special {
		if ip, err := netip.ParseAddr(hostname); err == nil && ip.Is4() {
			return Host{Kind: HostIPv4, IP: ip}
		}
	}
	return Host{Kind: HostDomain, Domain: hostname}
}
