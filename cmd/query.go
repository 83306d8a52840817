package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var (
	flagQueryAfter   string
	flagQueryChecked bool
)

var errNoResult = errors.New("no result found")

var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Find the most relevant directory for the provided query",
	Long: `Print the best-ranked directory whose name contains the query.

Directories whose own name matches come first, by score; directories matching
only through a parent follow. Pass the current directory with --after to get
the next match instead, cycling back to the first one after the last.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&flagQueryAfter, "after", "a", "", "Return the match ranked after this directory")
	queryCmd.Flags().BoolVarP(&flagQueryChecked, "checked", "c", false, "Skip and forget directories that no longer exist")
	_ = queryCmd.MarkFlagDirname("after")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("please provide a query to search from")
	}
	checked := resolveChecked(cmd)
	after := resolveAfter(flagQueryAfter)

	return withIndex(func(x *index.Index) error {
		var (
			p  string
			ok bool
		)
		if checked {
			p, ok = x.QueryChecked(query, after)
		} else {
			p, ok = x.QueryUnchecked(query, after)
		}
		if !ok {
			return errNoResult
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	})
}

// resolveChecked honors an explicit --checked, else the config default.
func resolveChecked(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("checked") {
		return flagQueryChecked
	}
	return cfg.Checked
}

// resolveAfter turns --after into an index key. Directories that no longer
// exist cannot be canonicalized and fall back to their absolute form.
func resolveAfter(after string) string {
	if after == "" {
		return ""
	}
	if p, err := index.Canonicalize(after); err == nil {
		return p
	}
	if abs, err := filepath.Abs(after); err == nil {
		return abs
	}
	return after
}
