package baseurl

import (
	"iter"
	"strings"

	"github.com/nlnwa/whatwg-url/url"
)

var (
	segmentEncodeSet        = url.PathPercentEncodeSet.Set('/', '%')
	specialSegmentEncodeSet = segmentEncodeSet.Set('\\')
)

// PathSegments returns the '/'-separated segments of the path, still
// percent-encoded. The path "/" yields a single empty segment.
func (b *BaseURL) PathSegments() iter.Seq[string] {
	path := b.Path()
	return func(yield func(string) bool) {
		for seg := range strings.SplitSeq(path[1:], "/") {
			if !yield(seg) {
				return
			}
		}
	}
}

// PathSegmentsBuilder edits the path of a BaseURL one segment at a time.
// Every call is applied to the BaseURL immediately.
type PathSegmentsBuilder struct {
	b   *BaseURL
	gen uint64
}

// PathSegmentsMut returns a builder for the path of b. The builder becomes
// stale, and panics on use, once b is modified through anything else.
func (b *BaseURL) PathSegmentsMut() *PathSegmentsBuilder {
	return &PathSegmentsBuilder{b: b, gen: b.gen}
}

// Clear removes all segments, leaving the path "/".
func (p *PathSegmentsBuilder) Clear() *PathSegmentsBuilder {
	p.apply("/")
	return p
}

// Push appends segment, percent-encoding '/' and '%' (and '\' for special
// schemes) so it stays a single segment. "." and ".." are ignored.
func (p *PathSegmentsBuilder) Push(segment string) *PathSegmentsBuilder {
	return p.Extend(segment)
}

// Extend pushes each segment in order.
func (p *PathSegmentsBuilder) Extend(segments ...string) *PathSegmentsBuilder {
	return p.ExtendSeq(func(yield func(string) bool) {
		for _, s := range segments {
			if !yield(s) {
				return
			}
		}
	})
}

// ExtendSeq pushes each segment of seq in order.
func (p *PathSegmentsBuilder) ExtendSeq(seq iter.Seq[string]) *PathSegmentsBuilder {
	p.check()
	set := segmentEncodeSet
	if p.b.special() {
		set = specialSegmentEncodeSet
	}
	path := p.b.Path()
	changed := false
	for seg := range seq {
		if seg == "." || seg == ".." {
			continue
		}
		enc := parser.PercentEncodeString(seg, set)
		if path != "/" {
			path += "/"
		}
		path += enc
		changed = true
	}
	if changed {
		p.apply(path)
	}
	return p
}

// Pop removes the last segment. The path never becomes shorter than "/".
func (p *PathSegmentsBuilder) Pop() *PathSegmentsBuilder {
	p.check()
	path := p.b.Path()
	if path == "/" {
		return p
	}
	i := strings.LastIndexByte(path, '/')
	if i == 0 {
		p.apply("/")
	} else {
		p.apply(path[:i])
	}
	return p
}

// PopIfEmpty removes the last segment if it is empty, turning "/a/" into "/a".
func (p *PathSegmentsBuilder) PopIfEmpty() *PathSegmentsBuilder {
	p.check()
	path := p.b.Path()
	if path != "/" && strings.HasSuffix(path, "/") {
		p.apply(path[:len(path)-1])
	}
	return p
}

// Finish returns the BaseURL the builder edits.
func (p *PathSegmentsBuilder) Finish() *BaseURL {
	p.check()
	return p.b
}

func (p *PathSegmentsBuilder) apply(path string) {
	p.check()
	p.b.url.SetPathname(path)
	p.b.sync()
	p.gen = p.b.gen
}

func (p *PathSegmentsBuilder) check() {
	if p.gen != p.b.gen {
		panic("baseurl: path segments builder used after its url was modified")
	}
}
