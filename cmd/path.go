package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var flagPathLossily bool

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Get the path of the index file",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func init() {
	pathCmd.Flags().BoolVarP(&flagPathLossily, "lossily", "l", false, "If the path contains invalid UTF-8 characters, don't fail and print it lossily instead")
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, _ []string) error {
	p, err := indexPath()
	if err != nil {
		return err
	}
	out, err := printablePath(p, flagPathLossily)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func printablePath(p string, lossily bool) (string, error) {
	if utf8.ValidString(p) {
		return p, nil
	}
	if !lossily {
		return "", fmt.Errorf("path to index file contains invalid UTF-8 characters; use --lossily to print it nonetheless")
	}
	return strings.ToValidUTF8(p, string(utf8.RuneError)), nil
}
