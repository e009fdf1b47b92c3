package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func seedCmd(opts *options) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "seed-products",
		Short: "Import the product catalogue CSV",
		Long: `Reads the catalogue CSV, maps every category to its canonical slug and
upserts the rows by SKU. Defaults to the configured catalogue path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := csvPath
			if path == "" {
				path = opts.cfg.Recommendation.CatalogPath
			}

			components, closeDB, err := opts.openComponents()
			if err != nil {
				return err
			}
			defer closeDB()

			report, err := components.Seeder.Seed(cmd.Context(), path, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded %d products from %s (%d rows, %d skipped, %d duplicates)\n",
				report.Written, report.Path, report.Rows, report.Skipped, report.Duplicates)
			if len(report.UnresolvedCategories) > 0 {
				fmt.Fprintf(out, "Unrecognised categories stored as other: %s\n", strings.Join(report.UnresolvedCategories, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "catalogue CSV to import")

	return cmd
}
