package cmd

import (
	"fmt"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Cleanup the index to remove deleted directories",
	Args:  cobra.NoArgs,
	RunE:  runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(_ *cobra.Command, _ []string) error {
	return withIndex(func(x *index.Index) error {
		reportCleanup(x.Cleanup())
		return nil
	})
}

func reportCleanup(removed []string) {
	if len(removed) == 0 {
		printOK("", "no stale directories found")
		return
	}
	for _, p := range removed {
		printInfo("", fmt.Sprintf("removed %s", p))
	}
	printOK("", fmt.Sprintf("%d stale director%s removed", len(removed), plural(len(removed), "y", "ies")))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
