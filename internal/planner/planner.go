// Package planner orders candidate POIs into a short itinerary: it builds a
// distance graph, draws approximate tours and retries until one satisfies
// the category adjacency rules.
package planner

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"poiroute/internal/geo"
	"poiroute/internal/model"
)

// DefaultMaxAttempts bounds the constrained search before falling back.
const DefaultMaxAttempts = 10

// Config tunes the planner. Zero values select defaults.
type Config struct {
	MaxAttempts  int   `yaml:"max_attempts"`
	ShortTourLen int   `yaml:"short_tour_len"`
	TwoOptPasses int   `yaml:"two_opt_passes"`
	Seed         int64 `yaml:"seed"` // fixed seed for reproducible tours; 0 draws from the clock
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.ShortTourLen <= 0 {
		c.ShortTourLen = DefaultShortTourLen
	}
	if c.TwoOptPasses <= 0 {
		c.TwoOptPasses = 50
	}
	return c
}

// EventKind labels a planner diagnostic event.
type EventKind string

const (
	EventAttempt  EventKind = "attempt"
	EventAccepted EventKind = "accepted"
	EventFallback EventKind = "fallback"
)

// Event describes one step of the retry loop.
type Event struct {
	Kind    EventKind `json:"kind"`
	Attempt int       `json:"attempt"`
	Valid   bool      `json:"valid"`
	Tour    Tour      `json:"tour"`
}

// Request is one planning problem.
type Request struct {
	POIs   []model.POI
	Cycle  bool
	Origin *geo.Point
	Start  *int
	End    *int
	Weight WeightFunc // nil selects haversine distances

	// Observe, when set, receives every Event synchronously.
	Observe func(Event)
}

// Result is an ordered itinerary plus how it was found.
type Result struct {
	Tour       Tour
	Stops      []model.Stop
	Start      int // -1 when no start was designated
	Attempts   int
	Relaxed    bool // no tour satisfied the rules; the last unconstrained one was returned
	DistanceKm float64
}

// Planner is safe for concurrent use; every call owns its graph and RNG.
type Planner struct {
	cfg       Config
	log       *zap.Logger
	validator *Validator
}

// New returns a planner. A nil logger discards diagnostics.
func New(cfg Config, log *zap.Logger) *Planner {
	cfg = cfg.withDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{cfg: cfg, log: log, validator: NewValidator(cfg.ShortTourLen, log)}
}

// Config returns the effective configuration.
func (p *Planner) Config() Config { return p.cfg }

// Plan orders req.POIs. Malformed input yields a *ValidationError; an empty
// list yields an empty result.
func (p *Planner) Plan(req Request) (Result, error) {
	n := len(req.POIs)
	if n == 0 {
		return Result{Tour: Tour{}, Stops: []model.Stop{}, Start: -1}, nil
	}
	points, cats, err := checkRequest(req)
	if err != nil {
		return Result{}, err
	}

	g := BuildGraph(points)
	start := -1
	if req.Start != nil {
		start = *req.Start
	} else if req.Origin != nil {
		if i, ok := g.Nearest(*req.Origin); ok {
			start = i
		}
	}
	end := -1
	if req.End != nil {
		end = *req.End
	}

	log := p.log.With(zap.Int("pois", n), zap.Bool("cycle", req.Cycle), zap.Int("start", start))
	emit := func(e Event) {
		if req.Observe != nil {
			req.Observe(e)
		}
	}
	c := NewConstructor(p.newRand(), p.cfg.TwoOptPasses)

	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		t, err := c.Build(g, req.Cycle, req.Weight)
		if err != nil {
			log.Error("tour construction failed", zap.Int("attempt", attempt), zap.Error(err))
			return Result{}, err
		}
		t = orient(t, start, end)
		ok := p.validator.Valid(cats, t)
		log.Debug("route attempt", zap.Int("attempt", attempt), zap.Bool("valid", ok), zap.Ints("tour", t))
		emit(Event{Kind: EventAttempt, Attempt: attempt, Valid: ok, Tour: t})
		if ok {
			emit(Event{Kind: EventAccepted, Attempt: attempt, Valid: true, Tour: t})
			return p.result(req, g, t, start, attempt, false), nil
		}
	}

	t, err := c.Build(g, req.Cycle, req.Weight)
	if err != nil {
		log.Error("tour construction failed", zap.Bool("fallback", true), zap.Error(err))
		return Result{}, err
	}
	t = orient(t, start, end)
	log.Warn("no route satisfied category rules, returning unconstrained route",
		zap.Int("attempts", p.cfg.MaxAttempts), zap.Ints("tour", t))
	emit(Event{Kind: EventFallback, Attempt: p.cfg.MaxAttempts, Valid: false, Tour: t})
	return p.result(req, g, t, start, p.cfg.MaxAttempts, true), nil
}

func (p *Planner) result(req Request, g *Graph, t Tour, start, attempts int, relaxed bool) Result {
	return Result{
		Tour:       t,
		Stops:      Project(req.POIs, t),
		Start:      start,
		Attempts:   attempts,
		Relaxed:    relaxed,
		DistanceKm: geo.Round2(g.Length(t, req.Cycle, nil)),
	}
}

func (p *Planner) newRand() *rand.Rand {
	seed := p.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// orient applies the start index, or failing that puts end last.
func orient(t Tour, start, end int) Tour {
	if start >= 0 {
		return Rotate(t, start)
	}
	if end >= 0 {
		return rotateToEnd(t, end)
	}
	return t
}

func checkRequest(req Request) ([]geo.Point, []model.Category, error) {
	n := len(req.POIs)
	points := make([]geo.Point, n)
	cats := make([]model.Category, n)
	for i, poi := range req.POIs {
		pt := geo.Point{Lat: poi.Lat, Lng: poi.Lng}
		if !pt.Valid() {
			return nil, nil, &ValidationError{Index: i, Name: poi.Name, Reason: "coordinates must be finite degrees"}
		}
		c := poi.Category
		if c == "" {
			c = model.Unknown
		}
		if !c.Known() {
			return nil, nil, &ValidationError{Index: i, Name: poi.Name, Reason: "unknown category " + string(c)}
		}
		points[i], cats[i] = pt, c
	}
	if req.Origin != nil && !req.Origin.Valid() {
		return nil, nil, &ValidationError{Index: -1, Name: "origin", Reason: "coordinates must be finite degrees"}
	}
	if req.Start != nil && (*req.Start < 0 || *req.Start >= n) {
		return nil, nil, &ValidationError{Index: -1, Name: "start index", Reason: "out of range"}
	}
	if req.End != nil && (*req.End < 0 || *req.End >= n) {
		return nil, nil, &ValidationError{Index: -1, Name: "end index", Reason: "out of range"}
	}
	return points, cats, nil
}
