package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type Options struct {
	ConfigPath  string
	CatalogPath string
	Verbose     bool
	Quiet       bool
}

var Version = "dev"

func Execute() error {
	opts := &Options{}
	root := NewRootCommand(opts)
	return root.Execute()
}

func NewRootCommand(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "amhub",
		Short: "Browse and export animation presets from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file path")
	root.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "Catalog YAML file (defaults to the built-in catalog)")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "Suppress non-error output")

	root.AddCommand(
		newBrowseCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newCategoriesCommand(opts),
		newShowCommand(opts),
		newExportCommand(opts),
		newConfigCommand(opts),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("amhub %s\n", Version))

	return root
}

func ExitWithError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
