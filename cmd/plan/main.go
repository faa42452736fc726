package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/weekender/internal/domain/recommend"
	"github.com/okian/weekender/internal/domain/scoring"
	"github.com/okian/weekender/internal/planner"
)

func main() {
	var (
		catalogPaths = flag.String("catalog", "", "Comma separated YAML event catalogs (default: built-in sample)")
		weatherPath  = flag.String("weather", "", "YAML weather snapshot (default: built-in sample)")
		noWeather    = flag.Bool("no-weather", false, "Score without weather")
		profilePath  = flag.String("profile", "", "YAML profile (default: default profile)")
		category     = flag.String("category", recommend.AllCategories, "Category filter")
		sortKey      = flag.String("sort", string(recommend.SortRecommended), "recommended, date or price")
		limit        = flag.Int("limit", 0, "Maximum rows, 0 for all")
		reasons      = flag.Int("reasons", scoring.DefaultDisplayReasons, "Reasons shown per event")
		explain      = flag.Bool("explain", false, "Print the score breakdown")
		format       = flag.String("format", planner.FormatTable, "table or json")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		planner.ShowHelp(os.Stdout)
		return
	}

	if err := planner.SetupLogging(*verbose); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to setup logging:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &planner.Config{
		CatalogPaths: planner.SplitPaths(*catalogPaths),
		WeatherPath:  *weatherPath,
		NoWeather:    *noWeather,
		ProfilePath:  *profilePath,
		Category:     *category,
		Sort:         *sortKey,
		Limit:        *limit,
		Reasons:      *reasons,
		Explain:      *explain,
		Format:       *format,
		Verbose:      *verbose,
	}

	if err := planner.Run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Plan failed:", err)
		os.Exit(1)
	}
}
