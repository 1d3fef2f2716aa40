package cli

import (
	"maps"
	"slices"
	"strconv"

	"github.com/jongio/baseurl/cliout"
	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the baseurl config file",
	}
	cmd.AddCommand(newConfigShowCommand(a), newConfigInitCommand(a))
	return cmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			return cliout.Print(cfg, func() {
				path, _ := ConfigPath(a.configPath)
				cliout.Header("baseurl config")
				cliout.Label("File", path)
				cliout.Label("Output", cfg.Output)
				cliout.Label("Scheme", cfg.DefaultScheme)
				cliout.Label("Debug", strconv.FormatBool(cfg.Debug))
				cliout.Label("JSON logs", strconv.FormatBool(cfg.StructuredLogs))
				for _, name := range slices.Sorted(maps.Keys(cfg.Bases)) {
					cliout.Bullet("@%s = %s", name, cfg.Bases[name])
				}
			})
		},
	}
}

func newConfigInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "init [path]",
		Short:       "Write a sample config file",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := ConfigPath(a.configPath)
			if len(args) == 1 {
				path = args[0]
			}
			if err := SaveSampleConfig(path); err != nil {
				return err
			}
			cliout.Success("wrote %s", path)
			return nil
		},
	}
}
