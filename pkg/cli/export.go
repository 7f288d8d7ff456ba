package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/export"
	"go.uber.org/zap"
)

func newExportCommand(opts *Options) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a preset's XML to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := findPreset(s.catalog, args[0])
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				dir = s.cfg.ExportDir
			}
			result, err := export.Export(export.NewFileSink(dir), p)
			if err != nil {
				return err
			}
			s.logger.Info("exported preset",
				zap.Int("id", p.ID),
				zap.String("file", result.Name),
				zap.String("dir", dir))

			if !opts.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%s) to %s\n", result.Name, humanize.Bytes(uint64(result.Bytes)), dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to export_dir from config)")
	return cmd
}
