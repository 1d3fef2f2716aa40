// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cli implements the baseurl command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jongio/baseurl/baseurl"
	"github.com/jongio/baseurl/cliout"
	"github.com/jongio/baseurl/logutil"
	"github.com/jongio/baseurl/security"
	"github.com/jongio/baseurl/urlutil"
	"github.com/jongio/baseurl/version"
	"github.com/spf13/cobra"
)

// app carries the global flags and the loaded config to every subcommand.
type app struct {
	output     string
	debug      bool
	configPath string
	cfg        *Config
}

// NewRootCommand builds the baseurl command tree.
func NewRootCommand(info *version.Info) *cobra.Command {
	a := &app{cfg: defaultConfig()}
	root := &cobra.Command{
		Use:   "baseurl",
		Short: "Inspect and edit URLs that can be used as a base",
		Long: `baseurl parses URLs with the WHATWG URL Standard and works only with
URLs that can serve as a base: a hierarchical path and a non-empty host.
Arguments of the form @name refer to bases defined in the config file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.output, "output", "o", "default", "Output format: default, json or yaml")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&a.configPath, "config", "", "Config file (default $BASEURL_CONFIG or ~/.baseurl.yaml)")

	root.AddCommand(
		newInspectCommand(a),
		newStripCommand(a),
		newHostOnlyCommand(a),
		newOriginCommand(a),
		newSetCommand(a),
		newPushCommand(a),
		newJoinCommand(a),
		newCheckCommand(a),
		newConfigCommand(a),
		version.NewCommand(info),
	)
	return root
}

// skipConfigLoad marks commands that must run without a readable config.
const skipConfigLoad = "baseurl/skip-config-load"

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := defaultConfig()
	if cmd.Annotations[skipConfigLoad] == "" {
		var err error
		if cfg, err = LoadConfig(a.configPath); err != nil {
			return err
		}
	}
	a.cfg = cfg

	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output = a.output
	}
	cliout.SetWriter(cmd.OutOrStdout())
	if err := cliout.SetFormat(output); err != nil {
		return err
	}

	logutil.Setup(logutil.Options{
		Debug:      a.debug || cfg.Debug,
		Structured: cfg.StructuredLogs,
		Writer:     cmd.ErrOrStderr(),
	})
	log := logutil.NewLogger("cli")
	path, _ := ConfigPath(a.configPath)
	if resolved, err := security.ResolvePath(path); err == nil {
		path = resolved
	}
	log.Debug("config loaded", "path", path, "output", output, "bases", len(cfg.Bases))
	if cmd.Annotations[skipConfigLoad] == "" {
		checkConfigFile(log, path, cfg)
	}
	return nil
}

// checkConfigFile warns about a config file other users can change, or read
// when it holds passwords.
func checkConfigFile(log *logutil.ComponentLogger, path string, cfg *Config) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := security.ValidateFilePermissions(path); errors.Is(err, security.ErrInsecureFilePermissions) {
		log.Warn("config file is writable by other users", "path", path)
	}
	if !cfg.hasPasswords() {
		return
	}
	if err := security.ValidateSecretFilePermissions(path); errors.Is(err, security.ErrReadableByOthers) {
		log.Warn("config file holds passwords but is readable by other users", "path", path)
	}
}

// resolve expands @name references and applies the configured default
// scheme to arguments without "://".
func (a *app) resolve(arg string) (string, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		b, ok := a.cfg.Bases[name]
		if !ok {
			return "", fmt.Errorf("unknown base %q (define it under bases: in the config file)", name)
		}
		return b.String(), nil
	}
	if a.cfg.DefaultScheme != "" && !strings.Contains(arg, "://") {
		return urlutil.NormalizeScheme(arg, a.cfg.DefaultScheme), nil
	}
	return arg, nil
}

// parse resolves arg and parses it as a base URL.
func (a *app) parse(arg string) (*baseurl.BaseURL, error) {
	raw, err := a.resolve(arg)
	if err != nil {
		return nil, err
	}
	b, err := baseurl.Parse(raw)
	if baseurl.IsNotABase(err) {
		return nil, fmt.Errorf("%s: %w", raw, err)
	}
	return b, err
}

// errSilent marks failures whose details were already printed.
var errSilent = errors.New("failed")

// Run executes the baseurl command with args and returns the process exit
// code. Errors are printed to stderr.
func Run(info *version.Info, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(info)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errSilent) {
		prev := cliout.Writer()
		cliout.SetWriter(stderr)
		cliout.Error("%v", err)
		cliout.SetWriter(prev)
	}
	return 1
}
