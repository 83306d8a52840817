package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/jumpy/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagIndexFile string

	// cfg is loaded once per invocation by loadConfig.
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:          "jumpy",
	Short:        "Jumpy — jump to the directories you use most",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Jumpy keeps a scored list of the directories you visit and finds the best
match for a partial name, so a shell function can cd straight into it.

Hook 'jumpy inc "$PWD"' into your prompt and 'cd "$(jumpy query <name>)"'
into a shell function.`,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagIndexFile, "index-file", "i", "", "Index file to use instead of the default location")
	_ = rootCmd.MarkPersistentFlagFilename("index-file")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	cfg = c
	configureColor(cfg.Color, os.Stdout)
	return nil
}

// indexPath resolves the index file for this invocation.
func indexPath() (string, error) {
	return config.ResolveIndexPath(flagIndexFile, cfg)
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
