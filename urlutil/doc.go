// Package urlutil validates user-supplied http and https URLs and returns
// them as *baseurl.BaseURL values.
//
// Parsing follows the WHATWG URL Standard, so the result matches what a
// browser would resolve: hosts are lower-cased and IDNA-encoded, default
// ports are dropped and dot segments are removed.
//
// # Usage
//
//	b, err := urlutil.Parse(flagValue)
//	if err != nil {
//		return fmt.Errorf("invalid --base: %w", err)
//	}
//
//	// Require TLS except for local development.
//	if err := urlutil.ValidateHTTPSOnly(endpoint); err != nil {
//		return err
//	}
//
//	// Accept "example.com" from users.
//	raw = urlutil.NormalizeScheme(raw, "https")
//
// # Validation Rules
//
//   - the trimmed input must not be empty
//   - it must not exceed MaxURLLength (2048) bytes
//   - the scheme must be http or https
//   - the WHATWG parser must accept it, which implies a non-empty host
//
// Errors wrap ErrEmpty, ErrTooLong, ErrScheme and ErrInsecure so callers can
// use errors.Is. Parser failures wrap a *baseurl.ParseError.
package urlutil
