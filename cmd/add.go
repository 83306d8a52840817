package cmd

import (
	"fmt"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:               "add <path>",
	Short:             "Add a new directory if not yet registered",
	Long:              "Add a directory to the index. Does nothing if the directory is already registered.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeDirs,
	RunE:              runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	return withIndex(func(x *index.Index) error {
		if err := x.Add(args[0]); err != nil {
			return fmt.Errorf("cannot add directory: %w", err)
		}
		return nil
	})
}

// completeDirs lets the shell complete directory names.
func completeDirs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
