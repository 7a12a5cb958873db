// Package rules holds the built-in crystallization rule sets.
package rules

import (
	"fmt"

	"github.com/san-kum/crystalsim/internal/cts"
)

// Cell states shared by all built-in sets.
const (
	Fluid cts.State = iota
	Particle
	Crystal
)

// States returns the declared state labels, index-coded.
func States() []string {
	return []string{"fluid", "particle", "crystal"}
}

var sets = map[string]func() []cts.Transition{
	"isotropic": Isotropic,
	"biased":    Biased,
}

// Get returns the named rule set.
func Get(name string) ([]cts.Transition, error) {
	fn, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule set: %s (available: %v)", name, List())
	}
	return fn(), nil
}

// List returns the available rule-set names.
func List() []string {
	return []string{"biased", "isotropic"}
}

func pair(tail, head cts.State, o cts.Orientation) cts.PairState {
	return cts.PairState{Tail: tail, Head: head, Orient: o}
}

// Isotropic is the uninhibited-growth set: particles random-walk at the
// same rate in all four directions and are captured on contact with
// crystal. Particle-particle and crystal-crystal pairs are absorbing.
func Isotropic() []cts.Transition {
	const (
		motion  = 50.0
		capture = 100.0
	)
	return []cts.Transition{
		{From: pair(Fluid, Particle, cts.Horizontal), To: pair(Particle, Fluid, cts.Horizontal), Rate: motion, Label: "left motion"},
		{From: pair(Particle, Fluid, cts.Horizontal), To: pair(Fluid, Particle, cts.Horizontal), Rate: motion, Label: "right motion"},
		{From: pair(Fluid, Particle, cts.Vertical), To: pair(Particle, Fluid, cts.Vertical), Rate: motion, Label: "down motion"},
		{From: pair(Particle, Fluid, cts.Vertical), To: pair(Fluid, Particle, cts.Vertical), Rate: motion, Label: "up motion"},
		{From: pair(Particle, Crystal, cts.Vertical), To: pair(Crystal, Crystal, cts.Vertical), Rate: capture, Label: "down capture"},
		{From: pair(Crystal, Particle, cts.Vertical), To: pair(Crystal, Crystal, cts.Vertical), Rate: capture, Label: "up capture"},
		{From: pair(Particle, Crystal, cts.Horizontal), To: pair(Crystal, Crystal, cts.Horizontal), Rate: capture, Label: "left capture"},
		{From: pair(Crystal, Particle, cts.Horizontal), To: pair(Crystal, Crystal, cts.Horizontal), Rate: capture, Label: "right capture"},
	}
}

// Biased is the gravity-biased settling variant: downward motion beats
// upward motion, lateral motion is slower, captures are unchanged.
func Biased() []cts.Transition {
	const (
		lateral = 10.0
		down    = 10.55
		up      = 9.45
		capture = 100.0
	)
	return []cts.Transition{
		{From: pair(Fluid, Particle, cts.Horizontal), To: pair(Particle, Fluid, cts.Horizontal), Rate: lateral, Label: "left motion"},
		{From: pair(Particle, Fluid, cts.Horizontal), To: pair(Fluid, Particle, cts.Horizontal), Rate: lateral, Label: "right motion"},
		{From: pair(Fluid, Particle, cts.Vertical), To: pair(Particle, Fluid, cts.Vertical), Rate: down, Label: "down motion"},
		{From: pair(Particle, Fluid, cts.Vertical), To: pair(Fluid, Particle, cts.Vertical), Rate: up, Label: "up motion"},
		{From: pair(Particle, Crystal, cts.Vertical), To: pair(Crystal, Crystal, cts.Vertical), Rate: capture, Label: "down capture"},
		{From: pair(Crystal, Particle, cts.Vertical), To: pair(Crystal, Crystal, cts.Vertical), Rate: capture, Label: "up capture"},
		{From: pair(Particle, Crystal, cts.Horizontal), To: pair(Crystal, Crystal, cts.Horizontal), Rate: capture, Label: "left capture"},
		{From: pair(Crystal, Particle, cts.Horizontal), To: pair(Crystal, Crystal, cts.Horizontal), Rate: capture, Label: "right capture"},
	}
}
