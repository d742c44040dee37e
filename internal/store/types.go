// Package store provides SQLite persistence for closetwatch coverage snapshots.
package store

import (
	"encoding/json"
	"time"
)

// Snapshot is one recorded coverage evaluation.
type Snapshot struct {
	ID      int64     `json:"id"`
	RunID   string    `json:"run_id"`
	TakenAt time.Time `json:"taken_at"`
	// Seasons evaluated, comma separated. Empty means all seasons.
	Seasons string `json:"seasons"`
	Version string `json:"version"`

	OverallCoveragePercent int `json:"overall_coverage_percent"`
	TotalTargets           int `json:"total_targets"`
	TotalCurrent           int `json:"total_current"`
	TotalGaps              int `json:"total_gaps"`
}

// ScenarioCoverage is the stored result for one scenario and season.
type ScenarioCoverage struct {
	ID                 int64  `json:"id"`
	SnapshotID         int64  `json:"snapshot_id"`
	ScenarioID         string `json:"scenario_id"`
	ScenarioName       string `json:"scenario_name"`
	Season             string `json:"season"`
	TargetQuantity     int    `json:"target_quantity"`
	PossibleOutfits    int    `json:"possible_outfits"`
	CoveragePercent    int    `json:"coverage_percent"`
	GapCount           int    `json:"gap_count"`
	BestAlternative    string `json:"best_alternative,omitempty"`
	BottleneckCategory string `json:"bottleneck_category,omitempty"`
}

// Key identifies the scenario and season pair across snapshots.
func (sc ScenarioCoverage) Key() string {
	return sc.ScenarioID + "/" + sc.Season
}

// Recommendation is one stored recommendation line of a scenario.
type Recommendation struct {
	ID         int64  `json:"id"`
	SnapshotID int64  `json:"snapshot_id"`
	ScenarioID string `json:"scenario_id"`
	Season     string `json:"season"`
	Position   int    `json:"position"`
	Text       string `json:"text"`
}

// Event is a recorder event captured during the evaluation.
type Event struct {
	ID         int64           `json:"id"`
	SnapshotID int64           `json:"snapshot_id"`
	Seq        int             `json:"seq"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
}
