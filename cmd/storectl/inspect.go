package main

import (
	"fmt"
	"io"
	"strings"

	"auroramart/internal/ml"

	"github.com/spf13/cobra"
)

func inspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect-models",
		Aliases: []string{"inspect"},
		Short:   "Report which model artifacts are found and what they contain",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := opts.cfg.Recommendation
			store := ml.NewArtifactStore(rc.ArtifactDirs, rc.ClassifierFile, rc.RulesFile, opts.logger)
			reports := store.Describe()

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			printReports(cmd.OutOrStdout(), rc.ArtifactDirs, reports)
			return nil
		},
	}
}

func printReports(w io.Writer, dirs []string, reports []ml.ArtifactReport) {
	fmt.Fprintf(w, "search path: %s\n", strings.Join(dirs, ", "))
	for _, r := range reports {
		fmt.Fprintf(w, "\n%s\n", r.Name)
		if r.Error != "" {
			fmt.Fprintf(w, "  error:   %s\n", r.Error)
			if r.Path == "" {
				continue
			}
		}
		fmt.Fprintf(w, "  path:    %s\n", r.Path)
		fmt.Fprintf(w, "  kind:    %s\n", orDash(string(r.Kind)))
		fmt.Fprintf(w, "  entries: %d\n", r.Entries)
		if len(r.Columns) > 0 {
			fmt.Fprintf(w, "  columns: %d (%s ...)\n", len(r.Columns), strings.Join(r.Columns[:min(len(r.Columns), 4)], ", "))
		}
		if len(r.Sample) > 0 {
			fmt.Fprintf(w, "  sample:  %s\n", strings.Join(r.Sample, ", "))
		}
	}
}
