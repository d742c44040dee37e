package coverage

import "sync"

// Event names emitted by the engine.
const (
	EventAlternativeEvaluated = "alternative.evaluated"
	EventScenarioEvaluated    = "scenario.evaluated"
	EventCoverageSummarized   = "coverage.summarized"
)

// Recorder receives observability events from the engine. Implementations
// must be safe for concurrent use; scenarios may be evaluated in parallel.
type Recorder interface {
	Record(event string, payload any)
}

// NopRecorder discards every event.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(string, any) {}

// RecordedEvent is one event captured by a MemoryRecorder.
type RecordedEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// MemoryRecorder buffers events in arrival order.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []RecordedEvent
}

// Record implements Recorder.
func (m *MemoryRecorder) Record(event string, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, RecordedEvent{Event: event, Payload: payload})
}

// Events returns a copy of the buffered events.
func (m *MemoryRecorder) Events() []RecordedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Count returns how many events with the given name were recorded.
func (m *MemoryRecorder) Count(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e.Event == event {
			n++
		}
	}
	return n
}

// AlternativeEvent is the payload of EventAlternativeEvaluated.
type AlternativeEvent struct {
	ScenarioID      string `json:"scenario_id"`
	Season          string `json:"season"`
	Alternative     string `json:"alternative"`
	PossibleOutfits int    `json:"possible_outfits"`
	Bottleneck      string `json:"bottleneck,omitempty"`
	Missing         int    `json:"missing"`
}

// ScenarioEvent is the payload of EventScenarioEvaluated.
type ScenarioEvent struct {
	ScenarioID      string `json:"scenario_id"`
	Season          string `json:"season"`
	PossibleOutfits int    `json:"possible_outfits"`
	TargetQuantity  int    `json:"target_quantity"`
	CoveragePercent int    `json:"coverage_percent"`
	IndexedItems    int    `json:"indexed_items"`
}

// SummaryEvent is the payload of EventCoverageSummarized.
type SummaryEvent struct {
	Scenarios              int `json:"scenarios"`
	OverallCoveragePercent int `json:"overall_coverage_percent"`
	TotalGaps              int `json:"total_gaps"`
}
