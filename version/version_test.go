package version

import (
	"bytes"
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/baseurl/cliout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	info := New("baseurl")
	assert.Equal(t, "baseurl", info.Name)
	assert.Equal(t, "0.0.0-dev", info.Version)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.GitCommit)
}

func TestNewUsesInjectedValues(t *testing.T) {
	old := [3]string{Version, BuildDate, GitCommit}
	t.Cleanup(func() { Version, BuildDate, GitCommit = old[0], old[1], old[2] })

	Version, BuildDate, GitCommit = "1.2.3", "2026-01-01", "abc123"
	info := New("baseurl")
	assert.Equal(t, "baseurl version 1.2.3 (commit: abc123, built: 2026-01-01)", info.String())
}

func runVersion(t *testing.T, format string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cliout.SetWriter(&buf)
	cliout.SetColor(false)
	require.NoError(t, cliout.SetFormat(format))
	t.Cleanup(func() {
		_ = cliout.SetFormat("default")
		cliout.SetWriter(os.Stdout)
	})

	info := &Info{Name: "baseurl", Version: "1.2.3", BuildDate: "2026-01-01", GitCommit: "abc123", GoVersion: "go1.26.0"}
	cmd := NewCommand(info)
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestCommandHumanReadable(t *testing.T) {
	out := runVersion(t, "default")
	for _, want := range []string{"baseurl Version", "Version:", "1.2.3", "Build Date:", "Git Commit:", "abc123", "go1.26.0"} {
		assert.Contains(t, out, want)
	}
}

func TestCommandQuiet(t *testing.T) {
	out := runVersion(t, "default", "--quiet")
	assert.Equal(t, "1.2.3", strings.TrimSpace(out))
}

func TestCommandJSON(t *testing.T) {
	out := runVersion(t, "json", "--quiet")

	var got Info
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, "abc123", got.GitCommit)
}

func TestCommandYAML(t *testing.T) {
	out := runVersion(t, "yaml")

	var got Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2026-01-01", got.BuildDate)
	assert.Equal(t, "baseurl", got.Name)
}
