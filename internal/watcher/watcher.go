// Package watcher re-evaluates wardrobe coverage at a regular interval and
// emits alerts when scenarios gain or lose coverage.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/blackwell-systems/closetwatch/internal/coverage"
)

// Alert levels.
const (
	LevelInfo     = "info"
	LevelWarning  = "warning"
	LevelCritical = "critical"
)

// Alert represents a notable change detected by the watcher.
type Alert struct {
	Level   string
	Title   string
	Message string
	Time    time.Time
}

// EvaluateFunc produces a fresh coverage report.
type EvaluateFunc func() (*coverage.Report, error)

// Watcher polls an EvaluateFunc and emits alerts on notable changes.
type Watcher struct {
	evaluate      EvaluateFunc
	interval      time.Duration
	thresholds    coverage.Thresholds
	previous      *coverage.Report
	alertFn       func(Alert)
	lastAlertKeys map[string]bool
}

// New creates a Watcher. Classification bands come from th.
func New(evaluate EvaluateFunc, interval time.Duration, th coverage.Thresholds, alertFn func(Alert)) *Watcher {
	return &Watcher{
		evaluate:      evaluate,
		interval:      interval,
		thresholds:    th,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Baseline takes the initial report that later checks compare against.
func (w *Watcher) Baseline() (*coverage.Report, error) {
	r, err := w.evaluate()
	if err != nil {
		return nil, err
	}
	w.previous = r
	return r, nil
}

// Run checks at every interval until ctx is cancelled. A baseline is taken
// first if none exists.
func (w *Watcher) Run(ctx context.Context) error {
	if w.previous == nil {
		if _, err := w.Baseline(); err != nil {
			return fmt.Errorf("initial evaluation: %w", err)
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, a := range w.Check() {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check evaluates once, compares against the previous report and returns
// new alerts. An alert identical to one from the last cycle is suppressed.
// A failed evaluation keeps the previous report.
func (w *Watcher) Check() []Alert {
	curr, err := w.evaluate()
	if err != nil {
		return w.dedupe([]Alert{{
			Level:   LevelWarning,
			Title:   "Evaluation failed",
			Message: err.Error(),
			Time:    time.Now(),
		}})
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr, w.thresholds)
	}
	w.previous = curr
	return w.dedupe(raw)
}

func (w *Watcher) dedupe(raw []Alert) []Alert {
	current := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		current[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = current
	return alerts
}
