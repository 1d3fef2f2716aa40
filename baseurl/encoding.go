package baseurl

import (
	"encoding"
	"fmt"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = (*BaseURL)(nil)
	_ encoding.TextUnmarshaler = (*BaseURL)(nil)
	_ yaml.Marshaler           = (*BaseURL)(nil)
	_ yaml.Unmarshaler         = (*BaseURL)(nil)
	_ pflag.Value              = (*BaseURL)(nil)
)

// MarshalText returns the serialization.
func (b *BaseURL) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses text and replaces b with the result. b is left
// untouched on error.
func (b *BaseURL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	b.url = parsed.url
	b.href = parsed.href
	b.gen++
	return nil
}

// MarshalYAML encodes b as a plain string.
func (b *BaseURL) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes a scalar string node.
func (b *BaseURL) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: base url must be a string", value.Line)
	}
	if err := b.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// Set implements pflag.Value.
func (b *BaseURL) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (b *BaseURL) Type() string {
	return "baseurl"
}
