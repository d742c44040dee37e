// Package mcp exposes the coverage engine as Model Context Protocol tools
// served over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// Loader returns the wardrobe items and the outfit requirements for the given
// seasons. It is called on every tool invocation so edits to the wardrobe
// and catalogue files are picked up without restarting the server.
type Loader func(seasons []wardrobe.Season) ([]wardrobe.Item, []wardrobe.OutfitRequirement, error)

// Server holds the dependencies shared by the tool handlers.
type Server struct {
	load    Loader
	engine  *coverage.Engine
	seasons []wardrobe.Season
}

// NewServer creates a Server. seasons are evaluated when a tool call does not
// name one; empty means all seasons.
func NewServer(load Loader, engine *coverage.Engine, seasons []wardrobe.Season) *Server {
	return &Server{load: load, engine: engine, seasons: seasons}
}

// MCPServer builds the mcp-go server with every tool registered.
func (s *Server) MCPServer(version string) *server.MCPServer {
	srv := server.NewMCPServer(
		"closetwatch",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	srv.AddTool(s.evaluateCoverageTool(), s.handleEvaluateCoverage)
	srv.AddTool(s.classifyGapTool(), s.handleClassifyGap)
	srv.AddTool(s.listGapsTool(), s.handleListGaps)
	return srv
}

// Run serves the tools on stdin/stdout until the client disconnects.
func (s *Server) Run(version string) error {
	return server.ServeStdio(s.MCPServer(version))
}
