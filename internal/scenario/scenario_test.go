package scenario

import (
	"context"
	"testing"

	"github.com/san-kum/crystalsim/internal/cts"
	"github.com/san-kum/crystalsim/internal/lattice"
	"github.com/san-kum/crystalsim/internal/rules"
)

func testConfig() Config {
	return Config{
		Rows: 12, Cols: 8,
		RuleSet:  "isotropic",
		Duration: 2.0, Interval: 0.5,
		Seed:        1,
		BedFraction: 0.25, SeedStart: 0.6,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"interval beyond duration", func(c *Config) { c.Interval = 5.0 }},
		{"unknown rule set", func(c *Config) { c.RuleSet = "melting" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestInitialCellsLayout(t *testing.T) {
	grid := lattice.New(10, 6)
	grid.CloseEdges()

	cells := InitialCells(grid, 0.3, 0.6)

	for cell, s := range cells {
		row, _ := grid.RowCol(cell)
		switch {
		case grid.IsBoundary(cell):
			if s != rules.Fluid {
				t.Errorf("boundary cell %d: expected fluid, got %v", cell, s)
			}
		case row > 6:
			if s != rules.Crystal {
				t.Errorf("row %d cell %d: expected seed crystal, got %v", row, cell, s)
			}
		case row < 3:
			if s != rules.Particle {
				t.Errorf("row %d cell %d: expected particle bed, got %v", row, cell, s)
			}
		default:
			if s != rules.Fluid {
				t.Errorf("row %d cell %d: expected fluid, got %v", row, cell, s)
			}
		}
	}
}

func TestRunCompletes(t *testing.T) {
	sc, err := New(testConfig())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	res, err := sc.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.FinalTime != 2.0 {
		t.Errorf("expected final time 2.0, got %f", res.FinalTime)
	}
	if len(res.Cells) != 12*8 {
		t.Errorf("expected %d cells, got %d", 12*8, len(res.Cells))
	}
	if len(res.Profile) != 12 {
		t.Errorf("expected 12 profile rows, got %d", len(res.Profile))
	}

	total := 0
	for _, n := range res.Census {
		total += n
	}
	if total != 12*8 {
		t.Errorf("census does not cover every cell: %v", res.Census)
	}

	labelled := 0
	for _, n := range res.ByLabel {
		labelled += n
	}
	if uint64(labelled) != res.Events {
		t.Errorf("label tallies (%d) disagree with event count (%d)", labelled, res.Events)
	}
}

func TestRunDeterminism(t *testing.T) {
	run := func() *Result {
		sc, err := New(testConfig())
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		res, err := sc.Run(context.Background())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if a.Events != b.Events {
		t.Fatalf("event counts differ: %d vs %d", a.Events, b.Events)
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs between identically seeded runs", i)
		}
	}
}

func TestRunCancellation(t *testing.T) {
	cfg := testConfig()
	cfg.Duration = 1000
	cfg.Interval = 0.01

	sc, err := New(cfg)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := sc.Run(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCallbackStopsEarly(t *testing.T) {
	sc, err := New(testConfig())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	calls := 0
	err = sc.RunWithCallback(context.Background(), func(tm float64, snapshot []cts.State) bool {
		calls++
		return false
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected callback once, got %d", calls)
	}
	if sc.Engine().Now() >= 2.0 {
		t.Errorf("run should have stopped after one interval, clock at %f", sc.Engine().Now())
	}
}

func TestCallbackSeesBoundarySnapshots(t *testing.T) {
	sc, err := New(testConfig())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	var last float64
	err = sc.RunWithCallback(context.Background(), func(tm float64, snapshot []cts.State) bool {
		if tm < last {
			t.Errorf("callback times went backwards: %f after %f", tm, last)
		}
		last = tm
		if len(snapshot) != 12*8 {
			t.Errorf("snapshot has %d cells", len(snapshot))
		}
		return true
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if last != 2.0 {
		t.Errorf("final callback at %f, expected 2.0", last)
	}
}
