// Package cliout provides structured output formatting for CLI commands.
//
// # Basic Usage
//
//	cliout.Success("https://example.org/ is a base url")
//	cliout.Error("line %d: %v", n, err)
//	cliout.Label("Host", b.HostStr())
//
// # Output Formats
//
//   - default: human-readable text with colors and Unicode symbols
//   - json: indented JSON for scripting
//   - yaml: YAML for scripting and config round trips
//
// Print takes both the data and a formatter for the default format:
//
//	err := cliout.Print(report, func() {
//	    cliout.Label("Scheme", report.Scheme)
//	})
//
// # Writer and Color
//
// Output goes to os.Stdout unless SetWriter is called; the cobra commands
// point it at cmd.OutOrStdout(). ANSI colors are used only when the writer is
// a terminal (golang.org/x/term) and NO_COLOR is unset. SetColor overrides
// the detection.
//
// # Tables
//
//	cliout.Table([]string{"Line", "Result", "URL"}, []cliout.TableRow{
//	    {"Line": "1", "Result": "base", "URL": "https://example.org/"},
//	})
package cliout
