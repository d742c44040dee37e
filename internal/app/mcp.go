package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/closetwatch/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve coverage tools over MCP stdio",
	Long: `Start a Model Context Protocol stdio server. The server exposes three tools:

  evaluate_coverage  Coverage report for every scenario (optional season)
  classify_gap       Priority of a category gap
  list_gaps          Ranked category gaps (optional season and limit)

The wardrobe and catalogue files are re-read on every call.

Example client configuration:
  {"mcpServers":{"closetwatch":{"command":"closetwatch","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	srv := mcp.NewServer(s.load, s.engine(nil), s.seasons)
	return srv.Run(appVersion)
}
