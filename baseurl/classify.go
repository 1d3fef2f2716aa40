package baseurl

import (
	"strings"

	"github.com/nlnwa/whatwg-url/url"
)

// IsBaseSuitable reports whether u can be used as a base: its path is not
// opaque and it has an authority with a non-empty host.
func IsBaseSuitable(u *url.Url) bool {
	if u == nil || u.OpaquePath() {
		return false
	}
	return hasAuthority(u) && u.Hostname() != ""
}

// hasAuthority reports whether the serialization carries "//" after the
// scheme. A URL without a host whose path starts with "//" serializes as
// "scheme:/.//", so the check cannot be fooled by the path.
func hasAuthority(u *url.Url) bool {
	rest := strings.TrimPrefix(u.Href(true), u.Scheme()+":")
	return strings.HasPrefix(rest, "//")
}
