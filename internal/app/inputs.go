package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/blackwell-systems/closetwatch/internal/catalog"
	"github.com/blackwell-systems/closetwatch/internal/config"
	"github.com/blackwell-systems/closetwatch/internal/coverage"
	"github.com/blackwell-systems/closetwatch/internal/output"
	"github.com/blackwell-systems/closetwatch/internal/wardrobe"
)

// session is the state every command starts from: resolved config, seasons
// and file paths.
type session struct {
	cfg      *config.Config
	seasons  []wardrobe.Season
	planning catalog.Period
	wardrobe string
	catalog  string
}

// newSession loads config and applies the global flags on top of it.
func newSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	output.SetNoColor(!output.DetectColor(cfg.Output.Color, flagNoColor))

	names := cfg.Seasons
	if len(flagSeasons) > 0 {
		names = flagSeasons
	}
	seasons, err := catalog.ParseSeasons(names)
	if err != nil {
		return nil, err
	}
	planning, err := catalog.ParsePeriod(cfg.PlanningPeriod)
	if err != nil {
		return nil, fmt.Errorf("planning_period: %w", err)
	}

	s := &session{
		cfg:      cfg,
		seasons:  seasons,
		planning: planning,
		wardrobe: cfg.WardrobeFile,
		catalog:  cfg.CatalogFile,
	}
	if flagWardrobe != "" {
		s.wardrobe = flagWardrobe
	}
	if flagCatalog != "" {
		s.catalog = flagCatalog
	}
	return s, nil
}

// load reads the wardrobe and catalogue files and builds requirements for
// seasons. It matches the mcp.Loader signature.
func (s *session) load(seasons []wardrobe.Season) ([]wardrobe.Item, []wardrobe.OutfitRequirement, error) {
	items, err := catalog.LoadWardrobe(s.wardrobe)
	if err != nil {
		return nil, nil, fmt.Errorf("loading wardrobe: %w", err)
	}
	cat, err := catalog.LoadCatalog(s.catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	return items, cat.Requirements(seasons, s.planning), nil
}

// engine builds a coverage engine from config. --verbose adds a stderr
// recorder alongside rec.
func (s *session) engine(rec coverage.Recorder) *coverage.Engine {
	recorders := []coverage.Recorder{}
	if rec != nil {
		recorders = append(recorders, rec)
	}
	if flagVerbose {
		recorders = append(recorders, newStderrRecorder(os.Stderr))
	}

	switch len(recorders) {
	case 0:
		rec = nil
	case 1:
		rec = recorders[0]
	default:
		rec = teeRecorder(recorders)
	}
	return coverage.NewEngine(s.cfg.EngineOptions(rec))
}

// evaluate loads the inputs for the session's seasons and runs the engine.
func (s *session) evaluate(rec coverage.Recorder) (*coverage.Report, error) {
	items, reqs, err := s.load(s.seasons)
	if err != nil {
		return nil, err
	}
	return s.engine(rec).Evaluate(items, reqs)
}

// stderrRecorder writes one muted line per engine event.
type stderrRecorder struct {
	mu sync.Mutex
	w  io.Writer
}

func newStderrRecorder(w io.Writer) *stderrRecorder {
	return &stderrRecorder{w: w}
}

func (r *stderrRecorder) Record(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte(fmt.Sprintf("%q", err.Error()))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, output.StyleMuted.Render(fmt.Sprintf("[%s] %s", event, data)))
}

// teeRecorder forwards every event to each recorder in order.
type teeRecorder []coverage.Recorder

func (t teeRecorder) Record(event string, payload any) {
	for _, r := range t {
		r.Record(event, payload)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
