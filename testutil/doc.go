// Package testutil provides test helpers shared by the baseurl packages.
//
//   - CaptureOutput collects what a function writes to os.Stdout
//   - MustParse builds a *baseurl.BaseURL or fails the test
//   - WriteFile drops a fixture file into a per-test temporary directory
//
// All helpers call t.Helper() so failures point at the caller.
//
//	func TestInspect(t *testing.T) {
//	    b := testutil.MustParse(t, "https://example.org/a")
//	    cfg := testutil.WriteFile(t, "config.yaml", "output: json\n")
//	    ...
//	}
package testutil
