package cmd

import (
	"fmt"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the index",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	return withIndex(func(x *index.Index) error {
		n := x.Len()
		x.Clear()
		printOK("", fmt.Sprintf("index cleared (%d entr%s removed)", n, plural(n, "y", "ies")))
		return nil
	})
}
