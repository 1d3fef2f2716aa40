package baseurl

import (
	"strconv"
	"strings"
)

var knownDefaultPorts = map[string]uint16{
	"http":   80,
	"https":  443,
	"ws":     80,
	"wss":    443,
	"ftp":    21,
	"gopher": 70,
}

// KnownDefaultPort returns the default port of scheme, if there is one.
func KnownDefaultPort(scheme string) (uint16, bool) {
	p, ok := knownDefaultPorts[strings.ToLower(scheme)]
	return p, ok
}

// Scheme returns the lowercase scheme without the trailing ':'.
func (b *BaseURL) Scheme() string {
	return b.url.Scheme()
}

// Username returns the percent-encoded username, or "" if there is none.
func (b *BaseURL) Username() string {
	return b.url.Username()
}

// Password returns the percent-encoded password.
func (b *BaseURL) Password() (string, bool) {
	p := b.url.Password()
	return p, p != ""
}

// Host returns the parsed host.
func (b *BaseURL) Host() Host {
	return classifyHost(b.url.Hostname(), b.special())
}

// HostStr returns the serialized host. IPv6 addresses keep their brackets.
func (b *BaseURL) HostStr() string {
	return b.url.Hostname()
}

// Domain returns the host if it is a domain.
func (b *BaseURL) Domain() (string, bool) {
	h := b.Host()
	if h.Kind != HostDomain {
		return "", false
	}
	return h.Domain, true
}

// UnicodeDomain returns the domain with punycode labels converted to Unicode.
func (b *BaseURL) UnicodeDomain() (string, bool) {
	h := b.Host()
	if h.Kind != HostDomain {
		return "", false
	}
	return h.Unicode(), true
}

// Port returns the explicit port. A port equal to the scheme's default is
// never stored, so https://example.org:443 has no port.
func (b *BaseURL) Port() (uint16, bool) {
	s := b.url.Port()
	if s == "" {
		return 0, false
	}
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(p), true
}

// PortOrKnownDefault returns the explicit port, or the default port of the
// scheme when there is no explicit one.
func (b *BaseURL) PortOrKnownDefault() (uint16, bool) {
	if p, ok := b.Port(); ok {
		return p, true
	}
	return KnownDefaultPort(b.Scheme())
}

// Path returns the percent-encoded path. It always starts with '/'.
func (b *BaseURL) Path() string {
	p := b.url.Pathname()
	if p == "" {
		return "/"
	}
	return p
}

// Query returns the percent-encoded query without the leading '?'. ok is
// false if the URL has no query, and true with "" for "http://h/?".
func (b *BaseURL) Query() (string, bool) {
	s := b.withoutFragment()
	// '?' is percent-encoded everywhere before the query.
	i := strings.IndexByte(s, '?')
	if i < 0 {
		return "", false
	}
	return s[i+1:], true
}

// Fragment returns the fragment without the leading '#'.
func (b *BaseURL) Fragment() (string, bool) {
	i := strings.IndexByte(b.href, '#')
	if i < 0 {
		return "", false
	}
	return b.href[i+1:], true
}

func (b *BaseURL) withoutFragment() string {
	if i := strings.IndexByte(b.href, '#'); i >= 0 {
		return b.href[:i]
	}
	return b.href
}
