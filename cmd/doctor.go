package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kamusis/jumpy/internal/config"
	"github.com/kamusis/jumpy/internal/index"
	"github.com/kamusis/jumpy/internal/store"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration and the index file",
	Long: `Check that Jumpy's configuration and index file are healthy.
Run this command when something seems wrong, or before filing a bug report.`,
	// Config errors are reported as a failed check instead of aborting.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runDoctor,
}

var doctorFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Automatically fix detected issues",
	Long: `Fix detected issues in the Jumpy index.

Currently fixes:
  - Stale entries: removes directories that no longer exist
  - Leftover temp files from interrupted writes next to the index file

Run 'jumpy doctor' first to see what will be fixed.`,
	RunE: runDoctorFix,
}

func init() {
	doctorCmd.AddCommand(doctorFixCmd)
	rootCmd.AddCommand(doctorCmd)
}

func runDoctorFix(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd, args); err != nil {
		return err
	}
	path, err := indexPath()
	if err != nil {
		return err
	}

	printSection("jumpy doctor fix")

	fmt.Println("\n[ Stale entries ]")
	if err := withIndexAt(path, func(x *index.Index) error {
		reportCleanup(x.Cleanup())
		return nil
	}); err != nil {
		return err
	}

	fmt.Println("\n[ Leftover temp files ]")
	leftovers := store.LeftoverTempFiles(path)
	if len(leftovers) == 0 {
		printOK("", "no leftover temp files found — nothing to fix")
		return nil
	}
	var failed int
	for _, p := range leftovers {
		if err := os.Remove(p); err != nil {
			printErr("", fmt.Sprintf("cannot delete %s: %v", p, err))
			failed++
		} else {
			printOK("", fmt.Sprintf("deleted %s", p))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be deleted", failed)
	}
	return nil
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("jumpy doctor")
	fmt.Println()

	// ── Check 1: config.yaml is valid ─────────────────────────────────────────
	fmt.Println("[ config.yaml ]")
	cfgPath, _ := config.ConfigPath()
	loaded, loadErr := config.Load()
	switch {
	case loadErr != nil:
		failD("cannot parse config: %v", loadErr)
	case fileMissing(cfgPath):
		printInfo("", fmt.Sprintf("no config file at %s — using defaults", cfgPath))
	default:
		printOK("", fmt.Sprintf("valid YAML: %s", cfgPath))
	}
	if loadErr == nil {
		cfg = loaded
		configureColor(cfg.Color, os.Stdout)
	}
	fmt.Println()

	// ── Check 2: index location ───────────────────────────────────────────────
	fmt.Println("[ Index file ]")
	path, err := indexPath()
	if err != nil {
		failD("cannot resolve index location: %v", err)
		return doctorSummary(false)
	}
	text, readErr := os.ReadFile(path)
	switch {
	case errors.Is(readErr, fs.ErrNotExist):
		printInfo("", fmt.Sprintf("%s does not exist yet — it is created on first 'jumpy add' or 'jumpy inc'", path))
	case readErr != nil:
		failD("cannot read %s: %v", path, readErr)
	default:
		printOK("", fmt.Sprintf("readable: %s", path))
	}
	fmt.Println()

	// ── Check 3: index decodes and has no stale entries ─────────────────────
	fmt.Println("[ Entries ]")
	if readErr == nil {
		x, err := index.Decode(string(text))
		if err != nil {
			failD("index is corrupt: %v", err)
		} else {
			printOK("", fmt.Sprintf("%d director%s registered", x.Len(), plural(x.Len(), "y", "ies")))
			// x is a scratch copy; nothing is written back here.
			stale := x.Cleanup()
			for _, p := range stale {
				printWarn("", fmt.Sprintf("stale: %s", p))
			}
			if len(stale) > 0 {
				fmt.Printf("\n  %s  %d stale entr%s — run 'jumpy doctor fix' or 'jumpy cleanup'.\n", warnIcon("⚠"), len(stale), plural(len(stale), "y", "ies"))
				allOK = false
			}
		}
	} else {
		printWarn("", "skipped (index file not loaded)")
	}
	fmt.Println()

	// ── Check 4: lock availability ───────────────────────────────────────────
	fmt.Println("[ Lock ]")
	if err := store.Probe(path, cfg.LockTimeout); err != nil {
		failD("%v", err)
	} else {
		printOK("", "index lock is free")
	}
	fmt.Println()

	// ── Check 5: leftover temp files ────────────────────────────────────────
	fmt.Println("[ Temp files ]")
	if leftovers := store.LeftoverTempFiles(path); len(leftovers) == 0 {
		printOK("", "no leftover temp files")
	} else {
		for _, p := range leftovers {
			printWarn("", p)
		}
		allOK = false
	}
	fmt.Println()

	return doctorSummary(allOK)
}

func doctorSummary(allOK bool) error {
	fmt.Println("===================")
	if allOK {
		fmt.Printf("%s  All checks passed. Jumpy is ready to use.\n", okIcon("✓"))
		return nil
	}
	fmt.Fprintf(os.Stderr, "%s  One or more checks failed. See details above.\n", errIcon("✗"))
	return fmt.Errorf("doctor found issues")
}

func fileMissing(p string) bool {
	_, err := os.Stat(p)
	return errors.Is(err, fs.ErrNotExist)
}
