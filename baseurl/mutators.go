// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package baseurl

import (
	"errors"
	"net/netip"
	"strconv"
	"strings"

	werrors "github.com/nlnwa/whatwg-url/errors"
	"github.com/nlnwa/whatwg-url/url"
)

const (
	opSetScheme = "set_scheme"
	opSetHost   = "set_host"
)

// specialSchemes are the WHATWG special schemes. Switching between a special
// and a non-special scheme is never allowed.
var specialSchemes = map[string]bool{
	"ftp":   true,
	"file":  true,
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

var errHostRejected = errors.New("host rejected by url parser")

// SetScheme changes the scheme. A trailing ':' is accepted. The scheme must
// match [a-zA-Z][a-zA-Z0-9+.-]* and must stay on the same side of the
// special/non-special divide. On error the URL is unchanged and the error
// wraps ErrSchemeInvalid.
func (b *BaseURL) SetScheme(scheme string) error {
	scheme = strings.TrimSuffix(scheme, ":")
	if !validScheme(scheme) {
		return b.refuse(opSetScheme, ErrInvalidSchemeSyntax)
	}
	scheme = strings.ToLower(scheme)
	if scheme == b.Scheme() {
		return nil
	}
	if specialSchemes[scheme] != b.special() {
		return b.refuse(opSetScheme, ErrSchemeSpecialityMismatch)
	}

	staged := b.stage()
	staged.SetProtocol(scheme)
	if staged.Scheme() != scheme {
		return b.refuse(opSetScheme, ErrSchemeRejected)
	}
	// The new scheme can change how the existing host reads back, e.g.
	// "localhost" becomes the empty host of a file URL. Classify the
	// serialization, not the setter's result.
	reparsed, err := staged.Parse(staged.Href(false))
	if err != nil || reparsed.Scheme() != scheme || !IsBaseSuitable(reparsed) {
		return b.refuse(opSetScheme, ErrSchemeRejected)
	}
	b.commit(reparsed)
	return nil
}

func validScheme(s string) bool {
	if s == "" || !url.ASCIIAlpha.Test(uint(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !url.ASCIIAlphanumeric.Test(uint(c)) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// SetHost parses host with the WHATWG host parser and installs it. The
// input must not carry a port; use SetPort for that. On error the URL is
// unchanged and the error is a *ParseError, or ErrNotABase if the new host
// would be empty.
func (b *BaseURL) SetHost(host string) error {
	if host == "" {
		return b.refuse(opSetHost, newParseError(host, werrors.Error(werrors.HostMissing, host, true)))
	}
	if hasPortSeparator(host) {
		return b.refuse(opSetHost, newParseError(host,
			werrors.ErrorWithDescr(werrors.HostInvalidCodePoint, ":", host, true)))
	}

	probe := b.url.Clone()
	if _, err := parser.BasicParser(host, nil, probe, url.StateHostname); err != nil {
		return b.refuse(opSetHost, newParseError(host, err))
	}
	if !IsBaseSuitable(probe) {
		return b.refuse(opSetHost, ErrNotABase)
	}
	// The hostname state stops at the first delimiter and drops the rest;
	// anything after it is not part of a host.
	if c, ok := hostDelimiter(host, b.special()); ok {
		typ := werrors.HostInvalidCodePoint
		if b.special() {
			typ = werrors.DomainInvalidCodePoint
		}
		return b.refuse(opSetHost, newParseError(host, werrors.ErrorWithDescr(typ, string(c), host, true)))
	}

	// The probe ran on the package parser. Apply the change through the
	// URL's own parser and make sure both agree.
	staged := b.stage()
	staged.SetHostname(host)
	if staged.Hostname() != probe.Hostname() {
		return b.refuse(opSetHost, newParseError(host, errHostRejected))
	}
	b.commit(staged)
	return nil
}

func hasPortSeparator(host string) bool {
	_, ok := outsideBrackets(host, func(c byte) bool { return c == ':' })
	return ok
}

// hostDelimiter reports the first '/', '?' or '#' outside brackets, and '\'
// as well on special URLs.
func hostDelimiter(host string, special bool) (byte, bool) {
	return outsideBrackets(host, func(c byte) bool {
		return c == '/' || c == '?' || c == '#' || (special && c == '\\')
	})
}

func outsideBrackets(host string, match func(byte) bool) (byte, bool) {
	inBrackets := false
	for i := 0; i < len(host); i++ {
		switch c := host[i]; {
		case c == '[':
			inBrackets = true
		case c == ']':
			inBrackets = false
		case !inBrackets && match(c):
			return c, true
		}
	}
	return 0, false
}

// SetIPHost installs addr as the host. An invalid addr is ignored. IPv6 zones
// are dropped, since URLs cannot carry them.
//
// Non-special URLs have opaque hosts, so an IPv4 address installed on one
// is serialized as plain text and Host reports it as HostDomain with the
// dotted form in Domain. IPv6 addresses keep HostIPv6 on every scheme.
func (b *BaseURL) SetIPHost(addr netip.Addr) {
	if !addr.IsValid() {
		logger().Debug("ignoring invalid ip host")
		return
	}
	host := addr.String()
	if addr.Is6() {
		host = "[" + addr.WithZone("").String() + "]"
	}
	b.url.SetHostname(host)
	b.sync()
}

// SetUsername percent-encodes and installs username. "" removes it.
func (b *BaseURL) SetUsername(username string) {
	b.url.SetUsername(username)
	b.sync()
}

// SetPassword percent-encodes and installs password. "" removes it.
func (b *BaseURL) SetPassword(password string) {
	b.url.SetPassword(password)
	b.sync()
}

// ClearPassword removes the password.
func (b *BaseURL) ClearPassword() {
	b.SetPassword("")
}

// SetPort installs port. The scheme's default port is elided, so on an https
// URL SetPort(443) leaves no explicit port.
func (b *BaseURL) SetPort(port uint16) {
	b.url.SetPort(strconv.Itoa(int(port)))
	b.sync()
}

// ClearPort removes the explicit port.
func (b *BaseURL) ClearPort() {
	b.url.SetPort("")
	b.sync()
}

// SetPath replaces the path. Characters outside the path percent-encode set
// are encoded, but '/' separates segments and existing escapes are kept.
// Dot segments are resolved.
func (b *BaseURL) SetPath(path string) {
	b.url.SetPathname(path)
	b.sync()
}

// SetQuery installs query as is; a leading '?' becomes part of the query.
// "" installs an empty query; use ClearQuery to remove it.
func (b *BaseURL) SetQuery(query string) {
	b.url.SetSearch("?" + query)
	b.sync()
}

// ClearQuery removes the query.
func (b *BaseURL) ClearQuery() {
	b.url.SetSearch("")
	b.sync()
}

// SetFragment installs fragment as is. "" installs an empty fragment; use
// ClearFragment to remove it.
func (b *BaseURL) SetFragment(fragment string) {
	b.url.SetHash("#" + fragment)
	b.sync()
}

// ClearFragment removes the fragment.
func (b *BaseURL) ClearFragment() {
	b.url.SetHash("")
	b.sync()
}

// Strip removes the username, password, query and fragment.
func (b *BaseURL) Strip() {
	b.url.SetUsername("")
	b.url.SetPassword("")
	b.url.SetSearch("")
	b.url.SetHash("")
	b.sync()
}

// MakeHostOnly strips b and removes its path and port, leaving exactly
// "scheme://host/".
func (b *BaseURL) MakeHostOnly() {
	b.Strip()
	b.url.SetPathname("/")
	b.url.SetPort("")
	b.sync()
}

// stage returns a fresh copy of the URL, built by the URL's own parser, for
// a mutation that may be refused.
func (b *BaseURL) stage() *url.Url {
	u, err := b.url.Parse(b.href)
	if err != nil {
		return b.url.Clone()
	}
	return u
}

func (b *BaseURL) commit(u *url.Url) {
	u.SearchParams()
	b.url = u
	b.sync()
}

func (b *BaseURL) refuse(op string, err error) error {
	recordRefusal(op)
	logger().WithOperation(op).Debug("refused mutation", "error", err)
	return err
}
