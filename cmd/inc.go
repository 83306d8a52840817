package cmd

import (
	"fmt"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var flagIncTop bool

var incCmd = &cobra.Command{
	Use:   "inc <path>",
	Short: "Increment a registered directory's score or add it to the index",
	Long: `Record a visit to a directory. The directory is added to the index if it
is not registered yet.

With --top the directory is ranked above every other directory.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDirs,
	RunE:              runInc,
}

func init() {
	incCmd.Flags().BoolVar(&flagIncTop, "top", false, "Give the maximum score to this directory")
	rootCmd.AddCommand(incCmd)
}

func runInc(_ *cobra.Command, args []string) error {
	return withIndex(func(x *index.Index) error {
		if err := x.Inc(args[0], flagIncTop); err != nil {
			return fmt.Errorf("cannot increment directory: %w", err)
		}
		return nil
	})
}
