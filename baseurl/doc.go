// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package baseurl provides BaseURL, a WHATWG URL that is guaranteed to be
// usable as a base for resolving references.
//
// A general URL may be opaque ("data:", "mailto:", "javascript:") or lack a
// host ("file:///tmp"), and every accessor on it has to account for that.
// BaseURL checks once, at construction, that the URL has a hierarchical path
// and a non-empty host. From then on the host, the host string and the path
// segments are always available, and no mutator can take the value out of
// that state.
//
// Parsing, host normalization (including IDNA) and percent-encoding are done
// by github.com/nlnwa/whatwg-url. This package never parses URLs by hand.
//
// # Construction
//
// Parse text, or adopt an already parsed URL:
//
//	b, err := baseurl.Parse("https://example.org/docs/")
//	if err != nil {
//		return err
//	}
//
//	u, _ := url.Parse("ftp://example.org/pub")
//	b, err = baseurl.FromURL(u)
//
// Rejected input is reported as ErrNotABase (the URL parsed, but it cannot be
// a base) or as a *ParseError wrapping the parser's own error:
//
//	_, err := baseurl.Parse("data:text/plain,Hello")
//	errors.Is(err, baseurl.ErrNotABase) // true
//
//	_, err = baseurl.Parse("http://[:::1]")
//	var pe *baseurl.ParseError
//	errors.As(err, &pe) // true
//
// MustParse and MustFromURL panic instead of returning an error. They are
// meant for tests and package-level variables.
//
// # Accessors
//
// Optional components are returned with a presence flag, so an empty query
// ("http://h/?") can be told apart from a missing one:
//
//	q, ok := b.Query()
//	for k, v := range b.QueryPairs() {
//		fmt.Println(k, v)
//	}
//	for seg := range b.PathSegments() {
//		fmt.Println(seg)
//	}
//
// # Mutators
//
// Field setters such as SetPort, SetPath and SetFragment cannot fail. SetScheme
// and SetHost validate their input and return an error, leaving the value
// exactly as it was when they refuse. Strip removes credentials, query and
// fragment; MakeHostOnly reduces the URL to "scheme://host/".
//
// PathSegmentsMut and QueryPairsMut return builders that write each operation
// through to the URL immediately:
//
//	b.PathSegmentsMut().Clear().Push("foo/bar").Push("baz")
//	// https://example.org/foo%2Fbar/baz
//
//	b.QueryPairsMut().AppendPair("q", "a b").AppendPair("page", "2")
//	// ?q=a+b&page=2
//
// A builder is tied to the state of its BaseURL. Modifying the BaseURL by any
// other means makes the builder stale, and using a stale builder panics.
//
// # Concurrency
//
// Accessors never modify the value, so a *BaseURL can be read from multiple
// goroutines. Mutators need exclusive access.
//
// # Encoding
//
// BaseURL implements encoding.TextMarshaler, encoding.TextUnmarshaler,
// yaml.Marshaler, yaml.Unmarshaler and pflag.Value, so it can be used directly
// in JSON and YAML documents and as a command-line flag. Decoding rejects URLs
// that cannot be a base.
//
// # Metrics
//
// Conversions and refused mutations are counted in Prometheus counters
// registered with the default registry:
//   - baseurl_conversions_total{result="ok|not_a_base|parse_failed"}
//   - baseurl_refused_mutations_total{operation="set_scheme|set_host"}
package baseurl
