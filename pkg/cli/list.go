package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/catalog"
	"go.seanlatimer.dev/amhub/internal/query"
)

func newListCommand(opts *Options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			items := query.Filter(s.catalog.Presets(), "", strings.TrimSpace(category))
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No templates found")
				return nil
			}
			printPresets(cmd.OutOrStdout(), items)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list presets in this category (case-sensitive)")
	return cmd
}

func printPresets(w io.Writer, items []catalog.Preset) {
	for _, p := range items {
		fmt.Fprintf(w, "[%s] #%d %s — %s\n", p.Category, p.ID, p.Title, p.Author)
	}
}
