package urlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jongio/baseurl/baseurl"
	werrors "github.com/nlnwa/whatwg-url/errors"
	"github.com/nlnwa/whatwg-url/url"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

var (
	// ErrEmpty is returned for empty or whitespace-only input.
	ErrEmpty = errors.New("url cannot be empty")
	// ErrTooLong is returned for input longer than MaxURLLength.
	ErrTooLong = errors.New("url exceeds maximum length")
	// ErrScheme is returned when the scheme is not http or https.
	ErrScheme = errors.New("url must use http:// or https://")
	// ErrInsecure is returned by ValidateHTTPSOnly for http URLs that do not
	// point at the local machine.
	ErrInsecure = errors.New("url must use https:// (http:// only allowed for localhost)")
)

// Validate checks that rawURL, once trimmed, is a non-empty http or https
// URL of at most MaxURLLength bytes that the WHATWG parser accepts as a base.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	_, err := Parse(rawURL)
	return err
}

// ValidateHTTPSOnly is like Validate but rejects http URLs unless the host
// is localhost or a loopback address.
func ValidateHTTPSOnly(rawURL string) error {
	b, err := Parse(rawURL)
	if err != nil {
		return err
	}
	if b.Scheme() == "https" || isLocalhost(b.Host()) {
		return nil
	}
	return ErrInsecure
}

// Parse trims and validates rawURL and returns it as a BaseURL.
//
// Example:
//
//	b, err := urlutil.Parse(userInput)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", b.HostStr())
func Parse(rawURL string) (*baseurl.BaseURL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmpty
	}
	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("%w of %d characters", ErrTooLong, MaxURLLength)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		pe := &baseurl.ParseError{Input: rawURL, Err: err}
		switch {
		case !strings.Contains(rawURL, ":"):
			return nil, ErrScheme
		case pe.Type() == werrors.HostMissing:
			return nil, fmt.Errorf("url missing host/domain: %w", pe)
		default:
			return nil, fmt.Errorf("invalid URL format: %w", pe)
		}
	}
	if s := u.Scheme(); s != "http" && s != "https" {
		return nil, fmt.Errorf("%w, got: %s", ErrScheme, s)
	}

	return baseurl.FromURL(u)
}

// NormalizeScheme ensures rawURL starts with http:// or https://. Anything
// else gets defaultScheme + "://" prepended, even if it has another scheme.
//
// Example:
//
//	urlutil.NormalizeScheme("example.com", "https") // "https://example.com"
//	urlutil.NormalizeScheme("http://example.com", "https") // unchanged
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)
	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return rawURL
	}
	return strings.TrimSuffix(defaultScheme, "://") + "://" + rawURL
}

func isLocalhost(h baseurl.Host) bool {
	if h.Kind == baseurl.HostDomain {
		return h.Domain == "localhost"
	}
	return h.IP.IsLoopback()
}
