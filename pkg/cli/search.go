package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/query"
	"go.uber.org/zap"
)

const suggestionCount = 2

func newSearchCommand(opts *Options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search presets by title, author or tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			text := strings.Join(args, " ")
			presets := s.catalog.Presets()
			results := query.Filter(presets, text, strings.TrimSpace(category))
			s.logger.Debug("search",
				zap.String("text", text),
				zap.String("category", category),
				zap.Int("results", len(results)))

			out := cmd.OutOrStdout()
			if len(results) > 0 {
				printPresets(out, results)
				return nil
			}

			fmt.Fprintln(out, "No templates found")
			if suggestions := query.Suggest(presets, text, suggestionCount); len(suggestions) > 0 {
				quoted := make([]string, 0, len(suggestions))
				for _, term := range suggestions {
					quoted = append(quoted, fmt.Sprintf("%q", term))
				}
				fmt.Fprintf(out, "Try searching for %s\n", strings.Join(quoted, " or "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Restrict results to one category (case-sensitive)")
	return cmd
}
