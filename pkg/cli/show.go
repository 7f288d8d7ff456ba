package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/export"
)

func newShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of one preset",
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

			out := cmd.OutOrStdout()
			title := p.Title
			if p.Featured {
				title = "[Featured] " + title
			}
			fmt.Fprintln(out, title)
			fmt.Fprintf(out, "Author:      %s\n", p.Author)
			fmt.Fprintf(out, "Category:    %s\n", p.Category)
			fmt.Fprintf(out, "Rating:      %.1f\n", p.Rating)
			fmt.Fprintf(out, "Downloads:   %s\n", p.Downloads)
			fmt.Fprintf(out, "Layers:      %d\n", p.Layers)
			fmt.Fprintf(out, "Frame rate:  %d fps\n", p.FPS)
			fmt.Fprintf(out, "Resolution:  %s\n", p.Resolution)
			fmt.Fprintf(out, "Size:        %s\n", p.Size)
			fmt.Fprintf(out, "File:        %s\n", export.FileName(p.Title))
			if len(p.Tags) > 0 {
				fmt.Fprintf(out, "Tags:        %s\n", strings.Join(p.Tags, ", "))
			}
			if p.Description != "" {
				fmt.Fprintf(out, "\n%s\n", p.Description)
			}
			return nil
		},
	}
}
