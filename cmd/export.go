package cmd

import (
	"fmt"

	"github.com/kamusis/jumpy/internal/index"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Output the entire index (plain text)",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	return withIndex(func(x *index.Index) error {
		if text := x.Encode(); text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return nil
	})
}
