package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kamusis/jumpy/internal/config"
	"github.com/mattn/go-isatty"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Status messages go through these helpers. Output meant for shells and
// scripts (query, export, path, list --just-paths) is printed bare.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ~  neutral info / state change

var (
	okIcon   = color.New(color.FgGreen).SprintFunc()
	errIcon  = color.New(color.FgRed).SprintFunc()
	warnIcon = color.New(color.FgYellow).SprintFunc()
	infoIcon = color.New(color.FgCyan).SprintFunc()
	heading  = color.New(color.Bold).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

// configureColor applies the configured color mode. In auto mode colors are
// used only when f is a terminal and NO_COLOR is unset.
func configureColor(mode string, f *os.File) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		color.NoColor = !tty || os.Getenv("NO_COLOR") != ""
	}
}

// printSection prints a top-level section header, e.g. "=== Doctor ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", heading(title))
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	if name == "" {
		fmt.Printf("  %s  %s\n", okIcon("✓"), msg)
	} else {
		fmt.Printf("  %s  [%s] %s\n", okIcon("✓"), name, msg)
	}
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  %s  %s\n", errIcon("✗"), msg)
	} else {
		fmt.Fprintf(os.Stderr, "  %s  [%s] %s\n", errIcon("✗"), name, msg)
	}
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	if name == "" {
		fmt.Printf("  %s  %s\n", warnIcon("⚠"), msg)
	} else {
		fmt.Printf("  %s  [%s] %s\n", warnIcon("⚠"), name, msg)
	}
}

// printInfo prints a neutral informational / state-change line.
func printInfo(name, msg string) {
	if name == "" {
		fmt.Printf("  %s  %s\n", infoIcon("~"), msg)
	} else {
		fmt.Printf("  %s  [%s] %s\n", infoIcon("~"), name, msg)
	}
}
