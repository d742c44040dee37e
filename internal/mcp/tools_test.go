package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/suggest"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func officeItems() []wardrobe.Item {
	var items []wardrobe.Item
	add := func(c wardrobe.Category, n int) {
		for i := 0; i < n; i++ {
			items = append(items, wardrobe.Item{
				ID:          fmt.Sprintf("%s-%d", c, i),
				Category:    c,
				ScenarioIDs: []string{"office"},
			})
		}
	}
	add(wardrobe.CategoryTop, 3)
	add(wardrobe.CategoryBottom, 2)
	add(wardrobe.CategoryFootwear, 1)
	return items
}

func officeRequirement(season wardrobe.Season) wardrobe.OutfitRequirement {
	return wardrobe.OutfitRequirement{
		ScenarioID:     "office",
		ScenarioName:   "Office Work",
		Season:         season,
		TargetQuantity: 5,
		Alternatives: []wardrobe.OutfitAlternative{{
			Name: "Business formal",
			Required: []wardrobe.CategoryRequirement{
				{Category: wardrobe.CategoryTop, Quantity: 1},
				{Category: wardrobe.CategoryBottom, Quantity: 1},
				{Category: wardrobe.CategoryFootwear, Quantity: 1},
			},
		}},
	}
}

// newTestServer returns a server whose loader emits one office requirement
// per requested season, and records the seasons it was asked for.
func newTestServer(t *testing.T, asked *[][]wardrobe.Season) *Server {
	t.Helper()
	load := func(seasons []wardrobe.Season) ([]wardrobe.Item, []wardrobe.OutfitRequirement, error) {
		if asked != nil {
			*asked = append(*asked, seasons)
		}
		var reqs []wardrobe.OutfitRequirement
		for _, s := range seasons {
			reqs = append(reqs, officeRequirement(s))
		}
		return officeItems(), reqs, nil
	}
	return NewServer(load, coverage.NewEngine(coverage.Options{}), []wardrobe.Season{wardrobe.SeasonWinter, wardrobe.SeasonSummer})
}

func TestEvaluateCoverage(t *testing.T) {
	var asked [][]wardrobe.Season
	s := newTestServer(t, &asked)

	res, err := s.handleEvaluateCoverage(context.Background(), makeReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(res))

	var report coverage.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &report))
	require.Len(t, report.Analyses, 2)
	assert.Equal(t, 1, report.Analyses[0].PossibleOutfits)
	assert.Equal(t, 20, report.Analyses[0].CoveragePercent)
	assert.Equal(t, wardrobe.CategoryFootwear, report.Analyses[0].BottleneckCategory)
	assert.Equal(t, 8, report.Summary.TotalGaps)

	require.Len(t, asked, 1)
	assert.Len(t, asked[0], 2, "default seasons are used when none is given")
}

func TestEvaluateCoverage_SingleSeason(t *testing.T) {
	var asked [][]wardrobe.Season
	s := newTestServer(t, &asked)

	res, err := s.handleEvaluateCoverage(context.Background(), makeReq(map[string]interface{}{"season": "fall"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, []wardrobe.Season{wardrobe.SeasonFall}, asked[0])
}

func TestEvaluateCoverage_Errors(t *testing.T) {
	s := newTestServer(t, nil)
	res, err := s.handleEvaluateCoverage(context.Background(), makeReq(map[string]interface{}{"season": "monsoon"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "unknown season")

	failing := NewServer(func([]wardrobe.Season) ([]wardrobe.Item, []wardrobe.OutfitRequirement, error) {
		return nil, nil, errors.New("file not found")
	}, coverage.NewEngine(coverage.Options{}), nil)
	res, err = failing.handleEvaluateCoverage(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "file not found")
}

func TestEvaluateCoverage_InvalidQuantity(t *testing.T) {
	bad := NewServer(func([]wardrobe.Season) ([]wardrobe.Item, []wardrobe.OutfitRequirement, error) {
		req := officeRequirement(wardrobe.SeasonWinter)
		req.Alternatives[0].Required[0].Quantity = 0
		return officeItems(), []wardrobe.OutfitRequirement{req}, nil
	}, coverage.NewEngine(coverage.Options{}), nil)

	res, err := bad.handleEvaluateCoverage(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "quantity")
}

func TestClassifyGap(t *testing.T) {
	s := newTestServer(t, nil)
	tests := []struct {
		args map[string]interface{}
		want int
	}{
		{map[string]interface{}{"category": "top", "current_count": float64(0), "gap_count": float64(1), "gap_type": "critical"}, suggest.PriorityCritical},
		{map[string]interface{}{"category": "footwear", "current_count": float64(1), "gap_count": float64(0), "gap_type": "minor"}, suggest.PriorityHigh},
		{map[string]interface{}{"category": "bottom", "current_count": float64(5), "gap_count": float64(4), "gap_type": "minor"}, suggest.PriorityHigh},
		{map[string]interface{}{"category": "accessory", "current_count": float64(5), "gap_count": float64(4), "gap_type": "bottleneck"}, suggest.PriorityMedium},
		{map[string]interface{}{"category": "outerwear", "current_count": float64(2), "gap_count": float64(0), "gap_type": "minor"}, suggest.PriorityLow},
	}
	for _, tt := range tests {
		res, err := s.handleClassifyGap(context.Background(), makeReq(tt.args))
		require.NoError(t, err)
		require.False(t, res.IsError, resultText(res))

		var got ClassifyResult
		require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
		assert.Equal(t, tt.want, got.Priority, "%v", tt.args)
		assert.Equal(t, suggest.PriorityLabel(tt.want), got.Label)
	}
}

func TestClassifyGap_InvalidArguments(t *testing.T) {
	s := newTestServer(t, nil)

	res, err := s.handleClassifyGap(context.Background(), makeReq(map[string]interface{}{"category": "hat", "gap_type": "minor"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleClassifyGap(context.Background(), makeReq(map[string]interface{}{"category": "top", "gap_type": "severe"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "gap_type")
}

func TestListGaps(t *testing.T) {
	s := newTestServer(t, nil)

	res, err := s.handleListGaps(context.Background(), makeReq(map[string]interface{}{"season": "winter"}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(res))

	var got GapsResult
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
	require.Equal(t, 3, got.Total)
	require.Len(t, got.Gaps, 3)
	for i := 1; i < len(got.Gaps); i++ {
		assert.LessOrEqual(t, got.Gaps[i-1].Priority, got.Gaps[i].Priority)
	}

	res, err = s.handleListGaps(context.Background(), makeReq(map[string]interface{}{"season": "winter", "limit": float64(1)}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
	assert.Equal(t, 3, got.Total)
	assert.Len(t, got.Gaps, 1)
}

func TestListGaps_NothingShort(t *testing.T) {
	s := NewServer(func([]wardrobe.Season) ([]wardrobe.Item, []wardrobe.OutfitRequirement, error) {
		req := officeRequirement(wardrobe.SeasonWinter)
		req.TargetQuantity = 1
		return officeItems(), []wardrobe.OutfitRequirement{req}, nil
	}, coverage.NewEngine(coverage.Options{}), nil)

	res, err := s.handleListGaps(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.True(t, strings.Contains(resultText(res), `"gaps": []`), resultText(res))
}

func TestToolDefinitions(t *testing.T) {
	s := newTestServer(t, nil)

	classify := s.classifyGapTool()
	assert.Equal(t, "classify_gap", classify.Name)
	for _, p := range []string{"category", "current_count", "gap_count", "gap_type"} {
		assert.Contains(t, classify.InputSchema.Properties, p)
		assert.Contains(t, classify.InputSchema.Required, p)
	}

	eval := s.evaluateCoverageTool()
	assert.Equal(t, "evaluate_coverage", eval.Name)
	assert.Contains(t, eval.InputSchema.Properties, "season")
	assert.Empty(t, eval.InputSchema.Required)

	assert.Equal(t, "list_gaps", s.listGapsTool().Name)
	assert.NotNil(t, s.MCPServer("test"))
}
