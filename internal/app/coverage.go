package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/output"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

var coverageSamples bool

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Outfit coverage per scenario and season",
	Long: `Evaluate the wardrobe against every scenario in the catalogue and show,
for each scenario and season, how many complete outfits can be assembled
against the target, which category is the bottleneck, and what to add.`,
	RunE: runCoverage,
}

func init() {
	coverageCmd.Flags().BoolVar(&coverageSamples, "samples", false, "Print sample outfit combinations")
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	report, err := s.evaluate(nil)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(w, report)
	}
	renderCoverage(w, report, s.cfg.Output.Width, coverageSamples)
	return nil
}

func renderCoverage(w io.Writer, report *coverage.Report, width int, samples bool) {
	fmt.Fprintln(w, output.Section("Wardrobe Coverage"))
	fmt.Fprintln(w)

	if len(report.Analyses) == 0 {
		fmt.Fprintln(w, " No scenarios to evaluate. Check the catalogue file and --season.")
		return
	}

	barWidth := 10
	if width >= 100 {
		barWidth = 20
	}

	tbl := output.NewTable("Scenario", "Season", "Outfits", "Coverage", "Best", "Bottleneck")
	for _, a := range report.Analyses {
		bottleneck := string(a.BottleneckCategory)
		if len(a.MissingCategories) > 0 {
			bottleneck = output.StyleError.Render("missing " + joinCategories(a.MissingCategories))
		}
		tbl.AddRow(
			a.ScenarioName,
			string(a.Season),
			fmt.Sprintf("%d/%d", a.PossibleOutfits, a.TargetQuantity),
			output.CoverageBar(a.CoveragePercent, barWidth),
			a.BestAlternative,
			bottleneck,
		)
	}
	tbl.Print(w)

	renderSummary(w, report.Summary)

	fmt.Fprintln(w, output.Section("Recommendations"))
	fmt.Fprintln(w)
	for _, a := range report.Analyses {
		fmt.Fprintf(w, " %s (%s)\n", output.StyleBold.Render(a.ScenarioName), a.Season)
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "   • %s\n", r)
		}
		if samples {
			renderSamples(w, a.Combinations)
		}
	}
}

func renderSummary(w io.Writer, sum wardrobe.CoverageSummary) {
	fmt.Fprintln(w, output.Section("Summary"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s%s\n", output.StyleLabel.Render("Overall coverage"), output.CoverageBar(sum.OverallCoveragePercent, 20))
	fmt.Fprintf(w, " %s%s\n", output.StyleLabel.Render("Outfits"), output.StyleValue.Render(fmt.Sprintf("%d/%d", sum.TotalCurrent, sum.TotalTargets)))
	fmt.Fprintf(w, " %s%s\n", output.StyleLabel.Render("Outfits short"), output.StyleValue.Render(fmt.Sprintf("%d", sum.TotalGaps)))
	if sum.WellCoveredCount() > 0 {
		fmt.Fprintf(w, " %s%s\n", output.StyleLabel.Render("Well covered"), output.StyleSuccess.Render(strings.Join(sum.WellCovered, ", ")))
	}
	if sum.PoorlyCoveredCount() > 0 {
		fmt.Fprintf(w, " %s%s\n", output.StyleLabel.Render("Poorly covered"), output.StyleError.Render(strings.Join(sum.PoorlyCovered, ", ")))
	}
	if len(sum.TopRecommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+output.StyleHeader.Render("Start here"))
		for i, r := range sum.TopRecommendations {
			fmt.Fprintf(w, "   %d. %s\n", i+1, r)
		}
	}
}

func renderSamples(w io.Writer, combos []wardrobe.OutfitCombination) {
	for i, c := range combos {
		names := make([]string, len(c.Items))
		for j, it := range c.Items {
			names[j] = it.Name
			if names[j] == "" {
				names[j] = it.ID
			}
		}
		line := fmt.Sprintf("     %d) %s", i+1, strings.Join(names, " + "))
		if !c.Complete {
			line += output.StyleWarning.Render(" (incomplete)")
		}
		fmt.Fprintln(w, output.StyleMuted.Render(line))
	}
}

func joinCategories(cats []wardrobe.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
