package planner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/weekender/pkg/logger"
)

// SetupLogging sends planner logs to stderr so stdout stays machine readable.
func SetupLogging(verbose bool) error {
	if err := logger.InitWithWriter(os.Stderr); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

// SplitPaths splits a comma separated path list, dropping blanks.
func SplitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ShowHelp prints usage information for the planner tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Weekend Planner
===============

Ranks weekend events for a profile without running the server.

Usage:
  go run ./cmd/plan [options]

Options:
  -catalog string
        Comma separated YAML event catalogs (default: built-in sample)
  -weather string
        YAML weather snapshot (default: built-in sample)
  -no-weather
        Score without weather
  -profile string
        YAML profile (default: default profile)
  -category string
        Category filter (default "all")
  -sort string
        recommended, date or price (default "recommended")
  -limit int
        Maximum rows, 0 for all
  -reasons int
        Reasons shown per event (default 2)
  -explain
        Print the score breakdown
  -format string
        table or json (default "table")
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  go run ./cmd/plan -profile me.yaml
  go run ./cmd/plan -catalog events.yaml,more.yaml -sort date -limit 10
  go run ./cmd/plan -profile me.yaml -category music -format json
`)
}
