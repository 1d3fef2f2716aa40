package baseurl

import (
	"errors"
	"fmt"

	werrors "github.com/nlnwa/whatwg-url/errors"
)

var (
	// ErrNotABase is returned when a URL parses but cannot be used as a base:
	// it has an opaque path or no host.
	ErrNotABase = errors.New("url cannot be a base")

	// ErrSchemeInvalid is returned when SetScheme refuses a scheme. The
	// specific reasons below all wrap it.
	ErrSchemeInvalid = errors.New("invalid scheme")

	// ErrInvalidSchemeSyntax means the scheme is not of the form [a-zA-Z][a-zA-Z0-9+.-]*.
	ErrInvalidSchemeSyntax = fmt.Errorf("%w: syntax", ErrSchemeInvalid)

	// ErrSchemeSpecialityMismatch means the change would switch between a
	// special scheme (http, https, ws, wss, ftp, file) and a non-special one.
	ErrSchemeSpecialityMismatch = fmt.Errorf("%w: cannot switch between special and non-special schemes", ErrSchemeInvalid)

	// ErrSchemeRejected means the parser refused the scheme for this URL,
	// e.g. "file" on a URL with credentials or a port.
	ErrSchemeRejected = fmt.Errorf("%w: not allowed for this url", ErrSchemeInvalid)
)

// ParseError reports that the URL parser rejected some input, either a whole
// URL passed to Parse or a host passed to SetHost.
type ParseError struct {
	Input string
	Err   error
}

func newParseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Type returns the parser's error type, for example
// errors.IPv6MultipleCompression. It is empty if the wrapped error did not
// come from the parser.
func (e *ParseError) Type() werrors.ErrorType {
	return werrors.Type(e.Err)
}
