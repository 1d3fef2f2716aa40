package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/jongio/baseurl/baseurl"
	"github.com/jongio/baseurl/cliout"
	"github.com/jongio/baseurl/fileutil"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the config file when --config is not given.
const EnvConfig = "BASEURL_CONFIG"

const defaultConfigName = ".baseurl.yaml"

// Config is the baseurl command's settings file.
type Config struct {
	Output         string `yaml:"output"`
	DefaultScheme  string `yaml:"defaultScheme"`
	Debug          bool   `yaml:"debug"`
	StructuredLogs bool   `yaml:"structuredLogs"`
	// Bases are named base URLs. An argument "@name" expands to Bases[name].
	Bases map[string]*baseurl.BaseURL `yaml:"bases"`
}

func defaultConfig() *Config {
	return &Config{
		Output: string(cliout.FormatDefault),
		Bases:  map[string]*baseurl.BaseURL{},
	}
}

// ConfigPath returns the file LoadConfig reads: flagPath, else
// $BASEURL_CONFIG, else ~/.baseurl.yaml. explicit is false only for the
// home-directory fallback, which may be missing.
func ConfigPath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, defaultConfigName), false
}

// envOverrides are settings read from the environment. They win over the
// config file and lose to flags.
type envOverrides struct {
	Output        string `env:"BASEURL_OUTPUT"`
	DefaultScheme string `env:"BASEURL_DEFAULT_SCHEME"`
}

// LoadConfig reads the config file chosen by ConfigPath, applies
// BASEURL_OUTPUT and BASEURL_DEFAULT_SCHEME, and fills unset fields with
// defaults. A missing fallback file yields the defaults; a missing explicit
// file is an error.
func LoadConfig(flagPath string) (*Config, error) {
	path, explicit := ConfigPath(flagPath)
	cfg, err := readConfig(path, explicit)
	if err != nil {
		return nil, err
	}

	ov, err := env.ParseAs[envOverrides]()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if ov.Output != "" {
		cfg.Output = ov.Output
	}
	if ov.DefaultScheme != "" {
		cfg.DefaultScheme = ov.DefaultScheme
	}

	defaults := defaultConfig()
	if cfg.Output == "" {
		cfg.Output = defaults.Output
	}
	if cfg.Bases == nil {
		cfg.Bases = defaults.Bases
	}
	if err := cfg.validate(); err != nil {
		if path == "" {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func readConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !slices.Contains([]string{"default", "json", "yaml"}, c.Output) {
		return fmt.Errorf("output must be default, json or yaml, got %q", c.Output)
	}
	if s := c.DefaultScheme; s != "" && s != "http" && s != "https" {
		return fmt.Errorf("defaultScheme must be http or https, got %q", s)
	}
	for name, b := range c.Bases {
		if name == "" || strings.ContainsAny(name, "@ \t") {
			return fmt.Errorf("invalid base name %q", name)
		}
		if b == nil {
			return fmt.Errorf("base %q has no url", name)
		}
	}
	return nil
}

func (c *Config) hasPasswords() bool {
	for _, b := range c.Bases {
		if _, ok := b.Password(); ok {
			return true
		}
	}
	return false
}

// SaveSampleConfig writes a commented sample config to path. It refuses to
// overwrite an existing file.
func SaveSampleConfig(path string) error {
	sample := defaultConfig()
	sample.DefaultScheme = "https"
	sample.Bases["example"] = baseurl.MustParse("https://example.org/api/")
	data, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := `# baseurl configuration
#
#   output:          default, json or yaml (overridden by --output)
#   defaultScheme:   prepended to arguments without "://" (http or https)
#   debug:           debug logging (also BASEURL_DEBUG=true)
#   structuredLogs:  JSON log records on stderr
#   bases:           named base urls; pass "@name" as an argument

`
	if err := fileutil.WriteNew(path, []byte(header+string(data))); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
