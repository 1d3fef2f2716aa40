package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOutput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want string
	}{
		{name: "single line", fn: func() error { fmt.Println("hello"); return nil }, want: "hello\n"},
		{name: "nothing", fn: func() error { return nil }, want: ""},
		{name: "error is not fatal", fn: func() error { fmt.Print("partial"); return errors.New("boom") }, want: "partial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := os.Stdout
			got := CaptureOutput(t, tt.fn)
			assert.Equal(t, tt.want, got)
			assert.Same(t, orig, os.Stdout)
		})
	}
}

func TestCaptureOutputRestoresOnPanic(t *testing.T) {
	orig := os.Stdout
	assert.Panics(t, func() {
		CaptureOutput(t, func() error { panic("boom") })
	})
	assert.Same(t, orig, os.Stdout)
}

func TestMustParse(t *testing.T) {
	b := MustParse(t, "HTTPS://Example.org")
	assert.Equal(t, "https://example.org/", b.String())
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "urls.txt", "https://example.org\n")

	assert.Equal(t, "urls.txt", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org\n", string(data))
}
