// Package app contains the Cobra command tree for closetwatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig   string
	flagNoColor  bool
	flagJSON     bool
	flagVerbose  bool
	flagWardrobe string
	flagCatalog  string
	flagSeasons  []string
)

var rootCmd = &cobra.Command{
	Use:   "closetwatch",
	Short: "Wardrobe coverage analysis",
	Long: `closetwatch checks how many complete outfits your wardrobe supports
for each lifestyle scenario and season, finds the categories holding you
back, and tracks coverage over time.

Items are read from a wardrobe file and scenarios from a catalogue file;
both default to ~/.config/closetwatch/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("closetwatch", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  coverage  Outfit coverage per scenario and season")
		fmt.Println("  gaps      Category gaps ranked by urgency")
		fmt.Println("  track     Snapshot coverage and compare over time")
		fmt.Println("  watch     Re-evaluate periodically and alert on changes")
		fmt.Println("  mcp       Serve coverage tools over MCP stdio")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/closetwatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log engine events to stderr")
	rootCmd.PersistentFlags().StringVar(&flagWardrobe, "wardrobe", "", "Wardrobe file (overrides wardrobe_file)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Scenario catalogue file (overrides catalog_file)")
	rootCmd.PersistentFlags().StringSliceVar(&flagSeasons, "season", nil, "Season to evaluate; repeatable (default: all)")
}
