// Package metrics provides observation helpers for automaton snapshots
// and transition streams.
package metrics

import "github.com/san-kum/crystalsim/internal/cts"

// Census counts cells per state. States outside [0, numStates) are
// ignored; a valid engine never produces them.
func Census(cells []cts.State, numStates int) []int {
	counts := make([]int, numStates)
	for _, s := range cells {
		if int(s) < numStates {
			counts[s]++
		}
	}
	return counts
}

// TransitionCounter tallies executed transitions by label. It
// implements cts.Observer.
type TransitionCounter struct {
	byLabel map[string]int
	total   int
}

func NewTransitionCounter() *TransitionCounter {
	return &TransitionCounter{byLabel: make(map[string]int)}
}

func (c *TransitionCounter) OnTransition(t float64, tr cts.Transition, link cts.Link) {
	c.byLabel[tr.Label]++
	c.total++
}

// Count returns how many times the labelled transition fired.
func (c *TransitionCounter) Count(label string) int { return c.byLabel[label] }

// Total returns the total number of executed transitions observed.
func (c *TransitionCounter) Total() int { return c.total }

// ByLabel returns a copy of the per-label tallies.
func (c *TransitionCounter) ByLabel() map[string]int {
	out := make(map[string]int, len(c.byLabel))
	for k, v := range c.byLabel {
		out[k] = v
	}
	return out
}

// Reset clears all tallies.
func (c *TransitionCounter) Reset() {
	c.byLabel = make(map[string]int)
	c.total = 0
}
