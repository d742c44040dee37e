package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/suggest"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// ClassifyResult is the response of classify_gap.
type ClassifyResult struct {
	Category string `json:"category"`
	GapType  string `json:"gap_type"`
	Priority int    `json:"priority"`
	Label    string `json:"label"`
}

// GapsResult is the response of list_gaps.
type GapsResult struct {
	Total int                   `json:"total"`
	Gaps  []suggest.CategoryGap `json:"gaps"`
}

func (s *Server) evaluateCoverageTool() mcp.Tool {
	return mcp.NewTool("evaluate_coverage",
		mcp.WithDescription("Evaluate how many complete outfits the wardrobe supports for each scenario and season, with bottlenecks and recommendations."),
		mcp.WithString("season",
			mcp.Description("Evaluate a single season: spring, summer, fall or winter (default: configured seasons)"),
		),
	)
}

func (s *Server) handleEvaluateCoverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := s.evaluate(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(report)
}

func (s *Server) classifyGapTool() mcp.Tool {
	return mcp.NewTool("classify_gap",
		mcp.WithDescription("Classify the urgency of a category gap: 1 critical, 2 high, 3 medium, 4 low."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Clothing category: top, bottom, one-piece, outerwear, footwear, accessory or other"),
		),
		mcp.WithNumber("current_count",
			mcp.Required(),
			mcp.Description("Items currently available in the category"),
		),
		mcp.WithNumber("gap_count",
			mcp.Required(),
			mcp.Description("Outfits still needed for the scenario"),
		),
		mcp.WithString("gap_type",
			mcp.Required(),
			mcp.Description("critical, bottleneck or minor"),
		),
	)
}

func (s *Server) handleClassifyGap(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := wardrobe.Category(req.GetString("category", ""))
	if !category.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", category)), nil
	}
	gapType, ok := suggest.ParseGapType(req.GetString("gap_type", ""))
	if !ok {
		return mcp.NewToolResultError("'gap_type' must be critical, bottleneck or minor"), nil
	}
	current := intArg(req, "current_count", 0)
	gap := intArg(req, "gap_count", 0)

	p := suggest.ClassifyPriority(category, current, gap, gapType)
	return jsonResult(ClassifyResult{
		Category: string(category),
		GapType:  string(gapType),
		Priority: p,
		Label:    suggest.PriorityLabel(p),
	})
}

func (s *Server) listGapsTool() mcp.Tool {
	return mcp.NewTool("list_gaps",
		mcp.WithDescription("List category gaps across all scenarios, most urgent first."),
		mcp.WithString("season",
			mcp.Description("Restrict to one season (default: configured seasons)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max gaps to return (default: all)"),
		),
	)
}

func (s *Server) handleListGaps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := s.evaluate(req)
	if errResult != nil {
		return errResult, nil
	}

	gaps := suggest.CollectGaps(report.Analyses)
	result := GapsResult{Total: len(gaps), Gaps: gaps}
	if limit := intArg(req, "limit", 0); limit > 0 && limit < len(gaps) {
		result.Gaps = gaps[:limit]
	}
	if result.Gaps == nil {
		result.Gaps = []suggest.CategoryGap{}
	}
	return jsonResult(result)
}

// evaluate loads the inputs for the requested season and runs the engine.
// Failures come back as tool error results.
func (s *Server) evaluate(req mcp.CallToolRequest) (*coverage.Report, *mcp.CallToolResult) {
	seasons := s.seasons
	if name := req.GetString("season", ""); name != "" {
		season := wardrobe.Season(name)
		if !season.Valid() {
			return nil, mcp.NewToolResultError(fmt.Sprintf("unknown season %q", name))
		}
		seasons = []wardrobe.Season{season}
	}

	items, reqs, err := s.load(seasons)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("loading wardrobe: %v", err))
	}
	report, err := s.engine.Evaluate(items, reqs)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("evaluating coverage: %v", err))
	}
	return report, nil
}

// intArg extracts an integer argument; JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
