package baseurl

import (
	"encoding/hex"
	"iter"
	"strings"

	"github.com/nlnwa/whatwg-url/url"
)

// formEncodeSet is the application/x-www-form-urlencoded percent-encode set.
// Only ASCII alphanumerics and *-._ are left as is; spaces are handled
// separately and become '+'.
var formEncodeSet = url.UserInfoPercentEncodeSet.Set('$', '%', '&', '+', ',', '!', '\'', '(', ')', '~')

// QueryPairs returns the name/value pairs of the query, decoded as
// application/x-www-form-urlencoded. A URL without a query yields nothing.
func (b *BaseURL) QueryPairs() iter.Seq2[string, string] {
	q, _ := b.Query()
	return func(yield func(string, string) bool) {
		for part := range strings.SplitSeq(q, "&") {
			if part == "" {
				continue
			}
			name, value, _ := strings.Cut(part, "=")
			if !yield(formDecode(name), formDecode(value)) {
				return
			}
		}
	}
}

func formDecode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if dec, err := hex.DecodeString(s[i+1 : i+3]); err == nil {
				sb.WriteByte(dec[0])
				i += 2
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return strings.ToValidUTF8(sb.String(), "\uFFFD")
}

func formEncode(s string) string {
	parts := strings.Split(s, " ")
	for i, part := range parts {
		parts[i] = parser.PercentEncodeString(part, formEncodeSet)
	}
	return strings.Join(parts, "+")
}

// QueryPairsBuilder appends form-urlencoded pairs to the query of a BaseURL.
// Every call is applied to the BaseURL immediately.
type QueryPairsBuilder struct {
	b   *BaseURL
	gen uint64
}

// QueryPairsMut returns a builder for the query of b. If b has no query, an
// empty one is installed. The builder becomes stale, and panics on use, once
// b is modified through anything else.
func (b *BaseURL) QueryPairsMut() *QueryPairsBuilder {
	if _, ok := b.Query(); !ok {
		b.url.SetSearch("?")
		b.sync()
	}
	return &QueryPairsBuilder{b: b, gen: b.gen}
}

// Clear removes all pairs, leaving an empty query.
func (q *QueryPairsBuilder) Clear() *QueryPairsBuilder {
	q.apply("")
	return q
}

// AppendPair appends name=value.
func (q *QueryPairsBuilder) AppendPair(name, value string) *QueryPairsBuilder {
	return q.appendEncoded(formEncode(name) + "=" + formEncode(value))
}

// AppendKeyOnly appends name without a '=' or value.
func (q *QueryPairsBuilder) AppendKeyOnly(name string) *QueryPairsBuilder {
	return q.appendEncoded(formEncode(name))
}

// ExtendPairs appends every pair of seq in order.
func (q *QueryPairsBuilder) ExtendPairs(seq iter.Seq2[string, string]) *QueryPairsBuilder {
	q.check()
	var pairs []string
	for name, value := range seq {
		pairs = append(pairs, formEncode(name)+"="+formEncode(value))
	}
	if len(pairs) == 0 {
		return q
	}
	return q.appendEncoded(strings.Join(pairs, "&"))
}

// Finish returns the BaseURL the builder edits.
func (q *QueryPairsBuilder) Finish() *BaseURL {
	q.check()
	return q.b
}

func (q *QueryPairsBuilder) appendEncoded(pairs string) *QueryPairsBuilder {
	q.check()
	current, _ := q.b.Query()
	if current != "" {
		pairs = current + "&" + pairs
	}
	q.apply(pairs)
	return q
}

func (q *QueryPairsBuilder) apply(query string) {
	q.check()
	q.b.url.SetSearch("?" + query)
	q.b.sync()
	q.gen = q.b.gen
}

func (q *QueryPairsBuilder) check() {
	if q.gen != q.b.gen {
		panic("baseurl: query pairs builder used after its url was modified")
	}
}
