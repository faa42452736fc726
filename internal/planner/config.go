// Package planner runs the offline planner: it loads a catalog, a weather
// snapshot and a profile from disk and prints the ranked list.
package planner

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds configuration for one planner run.
type Config struct {
	CatalogPaths []string // YAML catalogs; empty uses the built-in sample
	WeatherPath  string   // YAML weather snapshot; empty uses the built-in sample
	NoWeather    bool     // score without any weather snapshot
	ProfilePath  string   // YAML profile; empty uses the default profile
	Category     string   // category filter, "all" keeps everything
	Sort         string   // recommended, date or price
	Limit        int      // maximum rows; zero prints all
	Reasons      int      // reasons shown per row
	Explain      bool     // print the per-signal breakdown
	Format       string   // table or json
	Verbose      bool     // enable debug logging
}
