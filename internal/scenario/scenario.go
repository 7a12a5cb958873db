// Package scenario assembles a grid, a rule set and an initial
// condition into a runnable crystallization experiment.
package scenario

import (
	"context"
	"fmt"

	"github.com/san-kum/crystalsim/internal/cts"
	"github.com/san-kum/crystalsim/internal/lattice"
	"github.com/san-kum/crystalsim/internal/metrics"
	"github.com/san-kum/crystalsim/internal/rules"
)

// Config describes one experiment. BedFraction is the share of grid
// height initially filled with suspended particles (from the bottom);
// SeedStart is the share of height above which the seed crystal sits.
type Config struct {
	Rows        int
	Cols        int
	RuleSet     string
	Duration    float64
	Interval    float64
	Seed        int64
	BedFraction float64
	SeedStart   float64
	OpenEdges   bool
}

// Scenario couples an engine to its grid and transition tally.
type Scenario struct {
	cfg     Config
	grid    *lattice.Raster
	engine  *cts.Engine
	counter *metrics.TransitionCounter
}

// Result is the outcome of a completed run.
type Result struct {
	FinalTime float64
	Cells     []cts.State
	Census    []int
	Events    uint64
	ByLabel   map[string]int
	Profile   []float64
}

// New builds the grid and engine for the config. Construction errors
// from the kernel are returned as is.
func New(cfg Config) (*Scenario, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("grid must be at least 1x1, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Interval <= 0 || cfg.Interval > cfg.Duration {
		return nil, fmt.Errorf("interval must be in (0, duration], got %f", cfg.Interval)
	}

	ruleSet, err := rules.Get(cfg.RuleSet)
	if err != nil {
		return nil, err
	}

	grid := lattice.New(cfg.Rows, cfg.Cols)
	if !cfg.OpenEdges {
		grid.CloseEdges()
	}

	eng, err := cts.New(grid, rules.States(), ruleSet, InitialCells(grid, cfg.BedFraction, cfg.SeedStart), cfg.Seed)
	if err != nil {
		return nil, err
	}

	s := &Scenario{cfg: cfg, grid: grid, engine: eng, counter: metrics.NewTransitionCounter()}
	eng.AddObserver(s.counter)
	return s, nil
}

// InitialCells lays out the starting condition: a bed of particles in
// the bottom bedFraction of rows, seed crystal in rows above seedStart
// of the height, fluid elsewhere. Boundary cells are left as fluid.
func InitialCells(grid *lattice.Raster, bedFraction, seedStart float64) []cts.State {
	cells := make([]cts.State, grid.CellCount())
	h := float64(grid.Rows())
	for cell := range cells {
		row, _ := grid.RowCol(cell)
		switch {
		case grid.IsBoundary(cell):
			cells[cell] = rules.Fluid
		case seedStart > 0 && float64(row) > seedStart*h:
			cells[cell] = rules.Crystal
		case float64(row) < bedFraction*h:
			cells[cell] = rules.Particle
		default:
			cells[cell] = rules.Fluid
		}
	}
	return cells
}

// Engine exposes the underlying engine, e.g. for attaching observers.
func (s *Scenario) Engine() *cts.Engine { return s.engine }

// Grid exposes the lattice.
func (s *Scenario) Grid() *lattice.Raster { return s.grid }

// Run advances the engine to the configured duration in Interval-sized
// chunks, checking ctx between chunks. On cancellation it returns the
// result accumulated so far together with the context error.
func (s *Scenario) Run(ctx context.Context) (*Result, error) {
	err := s.RunWithCallback(ctx, nil)
	return s.Result(), err
}

// RunWithCallback is Run with a per-interval hook. The callback sees
// the engine at a RunUntil boundary, where snapshot reads are safe;
// returning false stops the run early.
func (s *Scenario) RunWithCallback(ctx context.Context, callback func(t float64, snapshot []cts.State) bool) error {
	for s.engine.Now() < s.cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		next := s.engine.Now() + s.cfg.Interval
		if next > s.cfg.Duration {
			next = s.cfg.Duration
		}
		s.engine.RunUntil(next)

		if callback != nil && !callback(s.engine.Now(), s.engine.Snapshot()) {
			return nil
		}
	}
	return nil
}

// Result captures the current engine state as a run outcome. Safe to
// call at any RunUntil boundary.
func (s *Scenario) Result() *Result {
	cells := s.engine.Snapshot()
	return &Result{
		FinalTime: s.engine.Now(),
		Cells:     cells,
		Census:    metrics.Census(cells, len(rules.States())),
		Events:    s.engine.Executed(),
		ByLabel:   s.counter.ByLabel(),
		Profile:   metrics.RowConcentration(cells, s.grid.Rows(), s.grid.Cols()),
	}
}
