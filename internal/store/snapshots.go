package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

const snapshotColumns = `id, run_id, taken_at, seasons, version,
	overall_coverage_percent, total_targets, total_current, total_gaps`

// SaveReport stores a coverage report as a new snapshot together with its
// per-scenario rows, recommendations and recorder events, all in one
// transaction.
func (db *DB) SaveReport(report *coverage.Report, events []coverage.RecordedEvent, seasons []wardrobe.Season, version string) (*Snapshot, error) {
	snap := &Snapshot{
		RunID:                  uuid.NewString(),
		TakenAt:                time.Now().UTC(),
		Seasons:                joinSeasons(seasons),
		Version:                version,
		OverallCoveragePercent: report.Summary.OverallCoveragePercent,
		TotalTargets:           report.Summary.TotalTargets,
		TotalCurrent:           report.Summary.TotalCurrent,
		TotalGaps:              report.Summary.TotalGaps,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO snapshots
		(run_id, taken_at, seasons, version, overall_coverage_percent, total_targets, total_current, total_gaps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.RunID, snap.TakenAt.Format(time.RFC3339Nano), snap.Seasons, snap.Version,
		snap.OverallCoveragePercent, snap.TotalTargets, snap.TotalCurrent, snap.TotalGaps,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}
	if snap.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}

	for _, a := range report.Analyses {
		if _, err := tx.Exec(
			`INSERT INTO scenario_coverage
			(snapshot_id, scenario_id, scenario_name, season, target_quantity, possible_outfits,
			 coverage_percent, gap_count, best_alternative, bottleneck_category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.ID, a.ScenarioID, a.ScenarioName, string(a.Season), a.TargetQuantity,
			a.PossibleOutfits, a.CoveragePercent, a.GapCount, a.BestAlternative,
			string(a.BottleneckCategory),
		); err != nil {
			return nil, fmt.Errorf("inserting coverage for %s: %w", a.ScenarioID, err)
		}
		for pos, text := range a.Recommendations {
			if _, err := tx.Exec(
				`INSERT INTO recommendations (snapshot_id, scenario_id, season, position, text)
				VALUES (?, ?, ?, ?, ?)`,
				snap.ID, a.ScenarioID, string(a.Season), pos, text,
			); err != nil {
				return nil, fmt.Errorf("inserting recommendation: %w", err)
			}
		}
	}

	for seq, ev := range events {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s payload: %w", ev.Event, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO events (snapshot_id, seq, name, payload) VALUES (?, ?, ?, ?)",
			snap.ID, seq, ev.Event, string(payload),
		); err != nil {
			return nil, fmt.Errorf("inserting event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	return db.GetSnapshotN(1)
}

// GetSnapshot returns a snapshot by ID, or nil if it does not exist.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous,
// etc.), or nil if there are fewer than n.
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	if n < 1 {
		return nil, fmt.Errorf("snapshot index %d: must be at least 1", n)
	}
	row := db.conn.QueryRow(
		"SELECT "+snapshotColumns+" FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

// ListSnapshots returns up to limit snapshots, newest first.
func (db *DB) ListSnapshots(limit int) ([]Snapshot, error) {
	rows, err := db.conn.Query("SELECT "+snapshotColumns+" FROM snapshots ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, *s)
	}
	return snaps, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &s.RunID, &takenAt, &s.Seasons, &s.Version,
		&s.OverallCoveragePercent, &s.TotalTargets, &s.TotalCurrent, &s.TotalGaps)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339Nano, takenAt)
	return &s, nil
}

// GetScenarioCoverage returns the per-scenario rows of a snapshot in the
// order they were evaluated.
func (db *DB) GetScenarioCoverage(snapshotID int64) ([]ScenarioCoverage, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, scenario_id, scenario_name, season, target_quantity,
		 possible_outfits, coverage_percent, gap_count, best_alternative, bottleneck_category
		 FROM scenario_coverage WHERE snapshot_id = ? ORDER BY id`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ScenarioCoverage
	for rows.Next() {
		var sc ScenarioCoverage
		var best, bottleneck sql.NullString
		if err := rows.Scan(
			&sc.ID, &sc.SnapshotID, &sc.ScenarioID, &sc.ScenarioName, &sc.Season,
			&sc.TargetQuantity, &sc.PossibleOutfits, &sc.CoveragePercent, &sc.GapCount,
			&best, &bottleneck,
		); err != nil {
			return nil, err
		}
		sc.BestAlternative = best.String
		sc.BottleneckCategory = bottleneck.String
		out = append(out, sc)
	}
	return out, rows.Err()
}

// GetRecommendations returns the recommendations of a snapshot grouped by
// scenario in evaluation order.
func (db *DB) GetRecommendations(snapshotID int64) ([]Recommendation, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, scenario_id, season, position, text
		 FROM recommendations WHERE snapshot_id = ? ORDER BY id`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Recommendation
	for rows.Next() {
		var r Recommendation
		if err := rows.Scan(&r.ID, &r.SnapshotID, &r.ScenarioID, &r.Season, &r.Position, &r.Text); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetEvents returns the recorder events of a snapshot in arrival order.
// An empty name returns every event.
func (db *DB) GetEvents(snapshotID int64, name string) ([]Event, error) {
	query := "SELECT id, snapshot_id, seq, name, payload FROM events WHERE snapshot_id = ?"
	args := []any{snapshotID}
	if name != "" {
		query += " AND name = ?"
		args = append(args, name)
	}
	query += " ORDER BY seq"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Event
	for rows.Next() {
		var e Event
		var payload string
		if err := rows.Scan(&e.ID, &e.SnapshotID, &e.Seq, &e.Name, &payload); err != nil {
			return nil, err
		}
		e.Payload = json.RawMessage(payload)
		out = append(out, e)
	}
	return out, rows.Err()
}

func joinSeasons(seasons []wardrobe.Season) string {
	parts := make([]string, len(seasons))
	for i, s := range seasons {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}
