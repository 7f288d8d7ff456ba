package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.seanlatimer.dev/amhub/internal/query"
)

func newCategoriesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories shown in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			for _, c := range query.CategorySet(s.cfg.Categories, s.catalog.Categories()) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
