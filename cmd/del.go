package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/kamusis/jumpy/internal/store"
	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:               "del <path>",
	Short:             "Delete a registered directory from the index",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeRegistered,
	RunE:              runDel,
}

func init() {
	rootCmd.AddCommand(delCmd)
}

func runDel(_ *cobra.Command, args []string) error {
	target := registeredKey(args[0])
	return withIndex(func(x *index.Index) error {
		if err := x.Remove(target); err != nil {
			return fmt.Errorf("cannot delete directory: %w", err)
		}
		return nil
	})
}

// registeredKey maps a user-typed path to the key it was registered under.
// A deleted directory can no longer be canonicalized, so its cleaned absolute
// path is used instead.
func registeredKey(p string) string {
	if c, err := index.Canonicalize(p); err == nil {
		return c
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// completeRegistered offers the registered directories. It only reads the
// index: the lock is held while reading, and nothing is written back.
func completeRegistered(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := loadConfig(cmd, args); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	path, err := indexPath()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	if fileMissing(path) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	f, err := store.Open(path, cfg.LockTimeout)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer f.Close()
	x, err := index.Decode(f.Contents())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return x.Paths(), cobra.ShellCompDirectiveNoFileComp
}
