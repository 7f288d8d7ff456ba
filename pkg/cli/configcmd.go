package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/config"
)

func newConfigCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath(opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a config file with the default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath(opts)
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config already exists: %s", path)
				}
				if err := saveDefaults(opts, path); err != nil {
					return err
				}
				if !opts.Quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				}
				return nil
			},
		},
	)
	return cmd
}

func configPath(opts *Options) (string, error) {
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		return path, nil
	}
	return config.GetConfigPath()
}

func saveDefaults(opts *Options, path string) error {
	cfg := config.Config{}.WithDefaults()
	if strings.TrimSpace(opts.ConfigPath) == "" {
		return config.SaveConfig(cfg)
	}
	return config.SaveConfigTo(path, cfg)
}
