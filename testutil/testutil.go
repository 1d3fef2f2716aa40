package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/baseurl/baseurl"
)

// CaptureOutput captures stdout during function execution.
// The original stdout is always restored, even if fn returns an error or
// panics. An error from fn is logged, not reported as a failure.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered so the reader never blocks if the test bails out early.
	outCh := make(chan string, 1)
	go func() {
		var sb strings.Builder
		_, _ = io.Copy(&sb, r)
		outCh <- sb.String()
	}()

	var fnErr error
	func() {
		defer func() {
			os.Stdout = orig
			if err := w.Close(); err != nil {
				t.Logf("failed to close pipe writer: %v", err)
			}
		}()
		fnErr = fn()
	}()

	output := <-outCh
	if fnErr != nil {
		t.Logf("command error: %v", fnErr)
	}
	return output
}

// MustParse parses raw as a base URL and fails the test if it is not one.
func MustParse(t testing.TB, raw string) *baseurl.BaseURL {
	t.Helper()
	b, err := baseurl.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return b
}

// WriteFile writes content to name under a fresh temporary directory and
// returns the file's path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
