package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/output"
	"github.com/blackwell-systems/closetwatch/internal/watcher"
)

var (
	watchInterval time.Duration
	watchQuiet    bool
	watchNotify   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate coverage periodically and alert on changes",
	Long: `Re-read the wardrobe and catalogue at a fixed interval and report
scenarios that lose a category, fall into the poorly-covered band, drop or
gain coverage.

Examples:
  closetwatch watch                  # check every 10 minutes (ctrl-c to stop)
  closetwatch watch --interval 1h
  closetwatch watch --notify --quiet # desktop notifications only`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Minute, "Check interval (minimum 30s)")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output")
	watchCmd.Flags().BoolVar(&watchNotify, "notify", false, "Send desktop notifications")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInterval < 30*time.Second {
		return fmt.Errorf("interval must be at least 30s, got %s", watchInterval)
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	alertFn := func(a watcher.Alert) {
		if watchNotify {
			_ = watcher.Notify(a)
		}
		if !watchQuiet {
			printAlert(out, a)
		}
	}

	engine := s.engine(nil)
	evaluate := func() (*coverage.Report, error) {
		items, reqs, err := s.load(s.seasons)
		if err != nil {
			return nil, err
		}
		return engine.Evaluate(items, reqs)
	}

	w := watcher.New(evaluate, watchInterval, s.cfg.Thresholds(), alertFn)
	initial, err := w.Baseline()
	if err != nil {
		return err
	}
	if !watchQuiet {
		_, _ = fmt.Fprintf(out, "closetwatch watching... (checking every %s)\n", watchInterval)
		_, _ = fmt.Fprintf(out, "[%s] %s Baseline: %d scenarios, %d%% overall\n",
			time.Now().Format("15:04:05"),
			output.StyleSuccess.Render("✓"),
			len(initial.Analyses),
			initial.Summary.OverallCoveragePercent)
	}

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		if !watchQuiet {
			_, _ = fmt.Fprintln(out, "\nStopped.")
		}
		return nil
	}
	return err
}

// printAlert writes a timestamped alert with a level marker.
func printAlert(w io.Writer, a watcher.Alert) {
	_, _ = fmt.Fprintf(w, "[%s] %s %s\n", a.Time.Format("15:04:05"), alertIcon(a.Level), a.Title)
	if a.Message != "" {
		_, _ = fmt.Fprintf(w, "           %s\n", a.Message)
	}
}

func alertIcon(level string) string {
	switch level {
	case watcher.LevelCritical:
		return output.StyleError.Render("●")
	case watcher.LevelWarning:
		return output.StyleWarning.Render("▲")
	case watcher.LevelInfo:
		return output.StyleSuccess.Render("✓")
	default:
		return " "
	}
}
