package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/closetwatch/internal/output"
	"github.com/blackwell-systems/closetwatch/internal/suggest"
)

var gapsLimit int

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Category gaps ranked by urgency",
	Long: `List every category holding back a scenario, ranked by priority:
missing categories first, then scarce footwear and large top or bottom
shortfalls, then everything else.`,
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().IntVar(&gapsLimit, "limit", 0, "Show at most N gaps (0 = all)")
	rootCmd.AddCommand(gapsCmd)
}

// gapsOutput is the JSON-serializable output for the gaps command.
type gapsOutput struct {
	Gaps     []suggest.CategoryGap `json:"gaps"`
	Total    int                   `json:"total"`
	Critical int                   `json:"critical"`
	High     int                   `json:"high"`
}

func runGaps(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	report, err := s.evaluate(nil)
	if err != nil {
		return err
	}

	out := buildGapsOutput(suggest.CollectGaps(report.Analyses), gapsLimit)

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, out)
	}
	renderGaps(w, out)
	return nil
}

func buildGapsOutput(ranked []suggest.CategoryGap, limit int) gapsOutput {
	out := gapsOutput{Gaps: ranked, Total: len(ranked)}
	for _, g := range ranked {
		switch g.Priority {
		case suggest.PriorityCritical:
			out.Critical++
		case suggest.PriorityHigh:
			out.High++
		}
	}
	if limit > 0 && limit < len(ranked) {
		out.Gaps = ranked[:limit]
	}
	if out.Gaps == nil {
		out.Gaps = []suggest.CategoryGap{}
	}
	return out
}

func renderGaps(w io.Writer, out gapsOutput) {
	fmt.Fprintln(w, output.Section("Category Gaps"))
	fmt.Fprintln(w)

	if out.Total == 0 {
		fmt.Fprintln(w, " "+output.StyleSuccess.Render("No gaps: every scenario has enough outfits."))
		return
	}

	fmt.Fprintf(w, " %d gaps (%d critical, %d high)\n\n", out.Total, out.Critical, out.High)

	tbl := output.NewTable("Priority", "Scenario", "Season", "Category", "Type", "Items", "Short")
	for _, g := range out.Gaps {
		tbl.AddRow(
			output.PriorityBadge(g.Priority, suggest.PriorityLabel(g.Priority)),
			g.ScenarioName,
			string(g.Season),
			string(g.Category),
			string(g.GapType),
			fmt.Sprintf("%d", g.CurrentItemCount),
			fmt.Sprintf("%d", g.GapCount),
		)
	}
	tbl.Print(w)

	if len(out.Gaps) < out.Total {
		fmt.Fprintln(w, output.StyleMuted.Render(fmt.Sprintf(" … %d more, use --limit 0 to show all", out.Total-len(out.Gaps))))
	}
}
