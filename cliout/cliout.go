package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols and their ASCII fallbacks.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIDot     = "*"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	out          io.Writer = os.Stdout
	color        = detectColor(os.Stdout)
)

var supportsUnicode = detectUnicodeSupport()

// detectColor reports whether w is a terminal that should get ANSI codes.
// NO_COLOR disables color everywhere.
func detectColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code and ConEmu render Unicode; the legacy
	// console does not.
	return os.Getenv("WT_SESSION") != "" ||
		os.Getenv("TERM_PROGRAM") == "vscode" ||
		os.Getenv("ConEmuPID") != "" ||
		os.Getenv("TERM") != ""
}

func symbol(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetWriter redirects all output to w and re-detects color support.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	color = detectColor(w)
}

// Writer returns the current output writer.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// SetColor forces color output on or off.
func SetColor(enabled bool) {
	mu.Lock()
	color = enabled
	mu.Unlock()
}

func colorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return color
}

// paint wraps s in the given ANSI codes when color is enabled.
func paint(s string, codes ...string) string {
	if !colorEnabled() || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

func printf(format string, args ...any) {
	fmt.Fprintf(Writer(), format, args...)
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch strings.ToLower(format) {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml", "yml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// IsStructured reports whether output is machine-readable (JSON or YAML).
func IsStructured() bool {
	return GetFormat() != FormatDefault
}

// PrintJSON writes data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(Writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML writes data as YAML.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(Writer())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format. For the default format the
// formatter is called instead.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Header prints a bold header with a divider
func Header(text string) {
	printf("\n%s\n", paint(text, Bold))
	printf("%s\n", strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	printf("%s %s\n", paint(symbol(SymbolCheck, ASCIICheck), BrightGreen), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	printf("%s %s\n", paint(symbol(SymbolCross, ASCIICross), BrightRed), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	printf("%s  %s\n", paint(symbol(SymbolWarning, ASCIIWarning), BrightYellow), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	printf("%s  %s\n", paint(symbol(SymbolInfo, ASCIIInfo), BrightBlue), fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...any) {
	printf("  %s %s\n", symbol(SymbolDot, ASCIIDot), fmt.Sprintf(format, args...))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	printf(format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	printf("   %s %s\n", paint(fmt.Sprintf("%-12s", label+":"), Dim), value)
}

// Muted returns s dimmed.
func Muted(s string) string {
	return paint(s, Dim)
}

// Status returns status colored by its meaning.
func Status(status string) string {
	switch strings.ToLower(status) {
	case "ok", "base", "success":
		return paint(status, BrightGreen)
	case "not-a-base", "warning":
		return paint(status, BrightYellow)
	case "error", "failed", "parse-error":
		return paint(status, BrightRed)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows. Widths are
// measured in runes, so cell values must not carry ANSI codes.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len([]rune(header))
	}
	for _, row := range rows {
		for _, header := range headers {
			widths[header] = max(widths[header], len([]rune(row[header])))
		}
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for _, header := range headers {
		sb.WriteString(paint(pad(header, widths[header]), Bold) + "  ")
	}
	sb.WriteString("\n   ")
	for _, header := range headers {
		sb.WriteString(strings.Repeat("─", widths[header]) + "  ")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString("   ")
		for _, header := range headers {
			sb.WriteString(pad(row[header], widths[header]) + "  ")
		}
		sb.WriteString("\n")
	}
	printf("%s", sb.String())
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
