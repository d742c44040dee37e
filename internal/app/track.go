package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/closetwatch/internal/config"
	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/output"
	"github.com/blackwell-systems/closetwatch/internal/store"
)

var (
	trackCompare int
	trackHistory int
	trackDB      string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot coverage and compare over time",
	Long: `Evaluate coverage, store a new snapshot (with the engine's events), and
compare per-scenario coverage against a previous snapshot with trend arrows.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show overall coverage across N most recent snapshots")
	trackCmd.Flags().StringVar(&trackDB, "db", "", "Snapshot database path (default: ~/.config/closetwatch/closetwatch.db)")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	if trackCompare < 1 {
		return fmt.Errorf("--compare must be at least 1")
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	dbPath := trackDB
	if dbPath == "" {
		dbPath = config.DBPath()
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	rec := &coverage.MemoryRecorder{}
	report, err := s.evaluate(rec)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	current, err := db.SaveReport(report, rec.Events(), s.seasons, appVersion)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if trackHistory > 0 {
		snaps, err := db.ListSnapshots(trackHistory)
		if err != nil {
			return fmt.Errorf("loading snapshots: %w", err)
		}
		reverse(snaps)
		if flagJSON {
			return writeJSON(w, map[string]any{"history": snaps})
		}
		renderHistory(w, snaps)
		return nil
	}

	diff, err := compareSnapshots(db, current, trackCompare)
	if err != nil {
		return err
	}

	if flagJSON {
		result := map[string]any{"snapshot": current}
		if diff != nil {
			result["diff"] = diff
		}
		return writeJSON(w, result)
	}
	renderTrack(w, current, diff)
	return nil
}

// compareSnapshots diffs current against the nth snapshot before it. It
// returns nil when there is no such snapshot.
func compareSnapshots(db *store.DB, current *store.Snapshot, n int) (*store.SnapshotDiff, error) {
	// The current snapshot is the newest, so the nth previous one is n+1.
	prev, err := db.GetSnapshotN(n + 1)
	if err != nil {
		return nil, fmt.Errorf("loading previous snapshot: %w", err)
	}
	if prev == nil {
		return nil, nil
	}

	prevRows, err := db.GetScenarioCoverage(prev.ID)
	if err != nil {
		return nil, fmt.Errorf("loading previous coverage: %w", err)
	}
	currRows, err := db.GetScenarioCoverage(current.ID)
	if err != nil {
		return nil, fmt.Errorf("loading current coverage: %w", err)
	}
	return store.Diff(prev, current, prevRows, currRows), nil
}

func renderTrack(w io.Writer, current *store.Snapshot, diff *store.SnapshotDiff) {
	fmt.Fprintln(w, output.Section("Track: Snapshot Comparison"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " Snapshot #%d taken at %s\n\n", current.ID, current.TakenAt.Local().Format("2006-01-02 15:04:05"))

	if diff == nil {
		fmt.Fprintln(w, " First snapshot recorded. Run 'closetwatch track' again later to see trends.")
		return
	}

	fmt.Fprintf(w, " Comparing against snapshot #%d (%s)\n", diff.Previous.ID, diff.Previous.TakenAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, " Overall coverage %d%% → %d%% %s\n\n",
		diff.Previous.OverallCoveragePercent, current.OverallCoveragePercent,
		output.TrendArrowPercent(diff.Overall, true))

	tbl := output.NewTable("Scenario", "Season", "Previous", "Current", "Trend", "Outfits short")
	for _, d := range diff.Deltas {
		prev := fmt.Sprintf("%d%%", d.Previous)
		curr := fmt.Sprintf("%d%%", d.Current)
		trend := output.TrendArrowPercent(d.Delta, true)
		switch d.Direction {
		case store.DirectionNew:
			prev, trend = "-", output.StyleHeader.Render("new")
		case store.DirectionRemoved:
			curr, trend = "-", output.StyleMuted.Render("removed")
		}
		tbl.AddRow(d.ScenarioName, d.Season, prev, curr, trend, output.TrendArrowCount(d.GapDelta, false))
	}
	tbl.Print(w)
}

func renderHistory(w io.Writer, snaps []store.Snapshot) {
	fmt.Fprintln(w, output.Section("Track: Coverage History"))
	fmt.Fprintln(w)

	if len(snaps) == 0 {
		fmt.Fprintln(w, " No snapshots found. Run 'closetwatch track' to create one.")
		return
	}
	fmt.Fprintf(w, " Showing %d most recent snapshots\n\n", len(snaps))

	tbl := output.NewTable("Snapshot", "Taken", "Seasons", "Coverage", "Outfits", "Short", "Trend")
	for i, s := range snaps {
		seasons := s.Seasons
		if seasons == "" {
			seasons = "all"
		}
		trend := ""
		if i > 0 {
			trend = output.TrendArrowPercent(s.OverallCoveragePercent-snaps[i-1].OverallCoveragePercent, true)
		}
		tbl.AddRow(
			fmt.Sprintf("#%d", s.ID),
			s.TakenAt.Local().Format("Jan 02 15:04"),
			seasons,
			output.CoverageBar(s.OverallCoveragePercent, 10),
			fmt.Sprintf("%d/%d", s.TotalCurrent, s.TotalTargets),
			fmt.Sprintf("%d", s.TotalGaps),
			trend,
		)
	}
	tbl.Print(w)
}

// reverse puts snapshots in chronological order.
func reverse(snaps []store.Snapshot) {
	for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
		snaps[i], snaps[j] = snaps[j], snaps[i]
	}
}
