package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var flagListJustPaths bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered directories",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListJustPaths, "just-paths", false, "Only display paths (sort order will be alphabetic instead of score-based)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	return withIndex(func(x *index.Index) error {
		if flagListJustPaths {
			for _, p := range x.Paths() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		}
		return printEntries(cmd.OutOrStdout(), x.Entries())
	})
}

// printEntries writes a score-ranked table of entries.
func printEntries(w io.Writer, entries []index.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t  %s\n", dim(formatScore(e.Score)), e.Path)
	}
	return tw.Flush()
}

// formatScore names the sentinel scores given by inc --top.
func formatScore(s uint64) string {
	switch s {
	case index.TopScore:
		return "top"
	case index.PromotedScore:
		return "promoted"
	}
	return strconv.FormatUint(s, 10)
}
