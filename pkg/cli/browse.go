package cli

import (
	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/config"
	"go.seanlatimer.dev/amhub/internal/export"
	"go.seanlatimer.dev/amhub/internal/tui"
)

func newBrowseCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive preset browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(opts)
		},
	}
}

func runBrowser(opts *Options) error {
	// The TUI owns the terminal, so logs go to a file.
	logPath, err := config.GetLogPath()
	if err != nil {
		return err
	}
	s, err := openSession(opts, logPath)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("browser started")
	return tui.ShowBrowser(tui.BrowserOptions{
		Catalog:    s.catalog,
		Categories: s.cfg.Categories,
		Sink:       export.NewFileSink(s.cfg.ExportDir),
		ExportDir:  s.cfg.ExportDir,
		Logger:     s.logger,
	})
}
