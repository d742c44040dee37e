package store

// Trend directions of a coverage delta.
const (
	DirectionImproved  = "improved"
	DirectionRegressed = "regressed"
	DirectionUnchanged = "unchanged"
	DirectionNew       = "new"
	DirectionRemoved   = "removed"
)

// SnapshotDiff is the comparison between two snapshots.
type SnapshotDiff struct {
	Previous *Snapshot      `json:"previous"`
	Current  *Snapshot      `json:"current"`
	Overall  int            `json:"overall_delta"`
	Deltas   []CoverageDelta `json:"deltas"`
}

// CoverageDelta is the change in one scenario and season between snapshots.
type CoverageDelta struct {
	ScenarioID   string `json:"scenario_id"`
	ScenarioName string `json:"scenario_name"`
	Season       string `json:"season"`
	Previous     int    `json:"previous_percent"`
	Current      int    `json:"current_percent"`
	Delta        int    `json:"delta"`
	GapDelta     int    `json:"gap_delta"`
	Direction    string `json:"direction"`
}

// Diff compares per-scenario coverage of two snapshots. Deltas follow the
// current snapshot's order, followed by pairs that only the previous snapshot
// had.
func Diff(prev, curr *Snapshot, prevRows, currRows []ScenarioCoverage) *SnapshotDiff {
	d := &SnapshotDiff{
		Previous: prev,
		Current:  curr,
		Overall:  curr.OverallCoveragePercent - prev.OverallCoveragePercent,
		Deltas:   []CoverageDelta{},
	}

	prevByKey := make(map[string]ScenarioCoverage, len(prevRows))
	for _, r := range prevRows {
		prevByKey[r.Key()] = r
	}

	seen := make(map[string]bool, len(currRows))
	for _, c := range currRows {
		seen[c.Key()] = true
		delta := CoverageDelta{
			ScenarioID:   c.ScenarioID,
			ScenarioName: c.ScenarioName,
			Season:       c.Season,
			Current:      c.CoveragePercent,
		}
		p, ok := prevByKey[c.Key()]
		if !ok {
			delta.Direction = DirectionNew
			d.Deltas = append(d.Deltas, delta)
			continue
		}
		delta.Previous = p.CoveragePercent
		delta.Delta = c.CoveragePercent - p.CoveragePercent
		delta.GapDelta = c.GapCount - p.GapCount
		delta.Direction = direction(delta.Delta)
		d.Deltas = append(d.Deltas, delta)
	}

	for _, p := range prevRows {
		if seen[p.Key()] {
			continue
		}
		d.Deltas = append(d.Deltas, CoverageDelta{
			ScenarioID:   p.ScenarioID,
			ScenarioName: p.ScenarioName,
			Season:       p.Season,
			Previous:     p.CoveragePercent,
			Delta:        -p.CoveragePercent,
			Direction:    DirectionRemoved,
		})
	}
	return d
}

func direction(delta int) string {
	switch {
	case delta > 0:
		return DirectionImproved
	case delta < 0:
		return DirectionRegressed
	default:
		return DirectionUnchanged
	}
}
