package rules

import (
	"testing"

	"github.com/san-kum/crystalsim/internal/cts"
)

func TestBuiltinSetsValidate(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			set, err := Get(name)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if len(set) != 8 {
				t.Errorf("expected 8 rules, got %d", len(set))
			}
			if _, err := cts.NewTable(States(), set); err != nil {
				t.Errorf("set does not validate: %v", err)
			}
		})
	}
}

func TestGetUnknownSet(t *testing.T) {
	if _, err := Get("sublimation"); err == nil {
		t.Error("expected error for unknown rule set")
	}
}

func TestIsotropicRates(t *testing.T) {
	table, err := cts.NewTable(States(), Isotropic())
	if err != nil {
		t.Fatalf("table construction failed: %v", err)
	}

	tests := []struct {
		name string
		pair cts.PairState
		want float64
	}{
		{"horizontal motion", cts.PairState{Tail: Fluid, Head: Particle, Orient: cts.Horizontal}, 50},
		{"vertical motion", cts.PairState{Tail: Particle, Head: Fluid, Orient: cts.Vertical}, 50},
		{"vertical capture", cts.PairState{Tail: Particle, Head: Crystal, Orient: cts.Vertical}, 100},
		{"horizontal capture", cts.PairState{Tail: Crystal, Head: Particle, Orient: cts.Horizontal}, 100},
		{"fluid pair absorbing", cts.PairState{Tail: Fluid, Head: Fluid, Orient: cts.Horizontal}, 0},
		{"particle pair absorbing", cts.PairState{Tail: Particle, Head: Particle, Orient: cts.Vertical}, 0},
		{"crystal pair absorbing", cts.PairState{Tail: Crystal, Head: Crystal, Orient: cts.Vertical}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.TotalRate(tt.pair); got != tt.want {
				t.Errorf("total rate for %v: expected %f, got %f", tt.pair, tt.want, got)
			}
		})
	}
}

func TestBiasedGravity(t *testing.T) {
	table, err := cts.NewTable(States(), Biased())
	if err != nil {
		t.Fatalf("table construction failed: %v", err)
	}

	down := table.TotalRate(cts.PairState{Tail: Fluid, Head: Particle, Orient: cts.Vertical})
	up := table.TotalRate(cts.PairState{Tail: Particle, Head: Fluid, Orient: cts.Vertical})

	if down != 10.55 || up != 9.45 {
		t.Errorf("expected 10.55 down / 9.45 up, got %f / %f", down, up)
	}
	if down <= up {
		t.Error("settling bias must favor downward motion")
	}
}

func TestCapturesProduceCrystalPairs(t *testing.T) {
	for _, tr := range Isotropic() {
		if tr.Rate != 100 {
			continue
		}
		if tr.To.Tail != Crystal || tr.To.Head != Crystal {
			t.Errorf("capture %q must produce a crystal-crystal pair, got %v", tr.Label, tr.To)
		}
	}
}
