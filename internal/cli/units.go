package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func unitsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "units [CATEGORY]",
		Short: "List categories, or the units of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := resolveConfig(opts.configPath)
			if err != nil {
				return err
			}
			conv := loaded.cfg.NewConverter()
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, cat := range conv.Categories() {
					fmt.Fprintf(w, "- %s  (%d units)\n", cat, len(conv.Units(cat)))
				}
				return nil
			}

			cat := domain.Category(strings.ToLower(strings.TrimSpace(args[0])))
			if !conv.HasCategory(cat) {
				return &domain.OpError{
					Op:   "cli.units",
					Kind: domain.KindNotFound,
					Err:  fmt.Errorf("category %q: %w", cat, domain.ErrNotFound),
				}
			}

			fmt.Fprintf(w, "Category: %s\n\n", cat)
			if cat == domain.CategoryTemperature {
				for _, u := range conv.Units(cat) {
					fmt.Fprintf(w, "- %s  (formula)\n", u)
				}
				return nil
			}

			factors := conv.Factors(cat)
			for _, u := range conv.Units(cat) {
				fmt.Fprintf(w, "- %s  %s\n", u, formatNumber(factors[u]))
			}
			return nil
		},
	}
}
