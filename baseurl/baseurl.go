package baseurl

import (
	"errors"
	"strings"

	"github.com/jongio/baseurl/logutil"
	"github.com/nlnwa/whatwg-url/url"
)

// parser is used where the URL's own setters would hide errors or where a
// percent-encoder is needed outside of a URL.
var parser = url.NewParser()

// BaseURL is a URL that can be used as a base: it has a hierarchical path and
// a non-empty host for its whole lifetime.
//
// The zero value is not usable; create one with Parse or FromURL. A BaseURL
// must not be copied after first use, use Clone instead.
type BaseURL struct {
	url  *url.Url
	href string
	gen  uint64
}

// FromURL wraps u after checking that it can be a base. The BaseURL takes
// ownership of u: the caller must not modify u afterwards.
func FromURL(u *url.Url) (*BaseURL, error) {
	if !IsBaseSuitable(u) {
		recordConversion(resultNotABase)
		if u != nil {
			logger().Debug("rejected url", "scheme", u.Scheme(), "opaque", u.OpaquePath())
		}
		return nil, ErrNotABase
	}
	// SearchParams is built lazily by the parser. Building it now keeps
	// every later read (including Url.Clone) free of writes.
	u.SearchParams()
	b := &BaseURL{url: u}
	b.sync()
	recordConversion(resultOK)
	return b, nil
}

// Parse parses s with the WHATWG parser and wraps the result. It returns a
// *ParseError if s is not a valid URL and ErrNotABase if it cannot be a base.
func Parse(s string) (*BaseURL, error) {
	u, err := url.Parse(s)
	if err != nil {
		recordConversion(resultParseFailed)
		return nil, newParseError(s, err)
	}
	return FromURL(u)
}

// MustFromURL is like FromURL but panics on error.
func MustFromURL(u *url.Url) *BaseURL {
	b, err := FromURL(u)
	if err != nil {
		panic("baseurl: " + err.Error())
	}
	return b
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *BaseURL {
	b, err := Parse(s)
	if err != nil {
		panic("baseurl: " + err.Error())
	}
	return b
}

// IntoURL returns the wrapped URL. The BaseURL must not be used afterwards.
func (b *BaseURL) IntoURL() *url.Url {
	u := b.url
	b.url = nil
	b.href = ""
	b.gen++
	return u
}

// IntoString returns the serialization. The BaseURL must not be used
// afterwards.
func (b *BaseURL) IntoString() string {
	s := b.href
	b.IntoURL()
	return s
}

// String returns the URL serialization. It returns "" for a nil or zero
// BaseURL.
func (b *BaseURL) String() string {
	if b == nil {
		return ""
	}
	return b.href
}

// Clone returns an independent copy of b.
func (b *BaseURL) Clone() *BaseURL {
	u, err := b.url.Parse(b.href)
	if err != nil {
		// A WHATWG serialization always reparses to itself.
		u = b.url.Clone()
	}
	c, err := FromURL(u)
	if err != nil {
		panic("baseurl: clone of a base url is not a base: " + b.href)
	}
	return c
}

// Equal reports whether b and other have the same serialization.
func (b *BaseURL) Equal(other *BaseURL) bool {
	return b.String() == other.String()
}

// Compare orders base URLs by their serialization.
func (b *BaseURL) Compare(other *BaseURL) int {
	return strings.Compare(b.String(), other.String())
}

// Join resolves ref against b. The result is a plain URL and need not be a
// valid base itself ("mailto:x" resolves to an opaque URL).
func (b *BaseURL) Join(ref string) (*url.Url, error) {
	u, err := b.url.Parse(ref)
	if err != nil {
		return nil, newParseError(ref, err)
	}
	return u, nil
}

// JoinBase resolves ref against b and requires the result to be a base.
func (b *BaseURL) JoinBase(ref string) (*BaseURL, error) {
	u, err := b.Join(ref)
	if err != nil {
		recordConversion(resultParseFailed)
		return nil, err
	}
	return FromURL(u)
}

// sync refreshes the cached serialization and invalidates outstanding
// builders. Every mutation ends with it.
func (b *BaseURL) sync() {
	b.href = b.url.Href(false)
	b.gen++
}

func (b *BaseURL) special() bool {
	return b.url.IsSpecialScheme()
}

func logger() *logutil.ComponentLogger {
	return logutil.NewLogger("baseurl")
}

// IsNotABase reports whether err is, or wraps, ErrNotABase.
func IsNotABase(err error) bool {
	return errors.Is(err, ErrNotABase)
}
