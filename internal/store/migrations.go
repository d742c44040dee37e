package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// migrations[i] brings the schema from version i to i+1.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id                       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id                   TEXT NOT NULL UNIQUE,
			taken_at                 TEXT NOT NULL,
			seasons                  TEXT NOT NULL,
			version                  TEXT NOT NULL,
			overall_coverage_percent INTEGER NOT NULL,
			total_targets            INTEGER NOT NULL,
			total_current            INTEGER NOT NULL,
			total_gaps               INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS scenario_coverage (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id         INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			scenario_id         TEXT NOT NULL,
			scenario_name       TEXT NOT NULL,
			season              TEXT NOT NULL,
			target_quantity     INTEGER NOT NULL,
			possible_outfits    INTEGER NOT NULL,
			coverage_percent    INTEGER NOT NULL,
			gap_count           INTEGER NOT NULL,
			best_alternative    TEXT,
			bottleneck_category TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			scenario_id TEXT NOT NULL,
			season      TEXT NOT NULL,
			position    INTEGER NOT NULL,
			text        TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			seq         INTEGER NOT NULL,
			name        TEXT NOT NULL,
			payload     TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scenario_coverage_snapshot ON scenario_coverage(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_snapshot ON recommendations(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_snapshot ON events(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_name ON events(name)`,
	},
}

// currentSchemaVersion is the latest schema version.
var currentSchemaVersion = len(migrations)

// Migrate runs forward migrations to bring the database schema up to date.
// Each version is applied in its own transaction.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		return err
	}

	for v := version; v < currentSchemaVersion; v++ {
		if err := db.applyMigration(v+1, migrations[v]); err != nil {
			return fmt.Errorf("migration v%d: %w", v+1, err)
		}
	}
	return nil
}

// SchemaVersion returns the applied schema version, 0 for a fresh database.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return version, err
}

func (db *DB) applyMigration(version int, statements []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
