package cts

import (
	"errors"
	"fmt"
)

// Construction-time errors. All of them abort engine creation; no
// partially built engine is ever returned.
var (
	// ErrNoStates indicates an empty state declaration.
	ErrNoStates = errors.New("cts: at least one state must be declared")

	// ErrUnknownState indicates a rule or initial condition references
	// a state outside the declared set.
	ErrUnknownState = errors.New("cts: undeclared state")

	// ErrNonPositiveRate indicates a transition rate <= 0.
	ErrNonPositiveRate = errors.New("cts: transition rate must be positive")

	// ErrDuplicateRule indicates two rules share the same
	// source and destination pair-state.
	ErrDuplicateRule = errors.New("cts: duplicate source->destination rule")

	// ErrNilTopology indicates a missing lattice.
	ErrNilTopology = errors.New("cts: topology must not be nil")

	// ErrCellCount indicates the initial condition does not address
	// every cell of the topology exactly once.
	ErrCellCount = errors.New("cts: initial state length does not match cell count")
)

// RuleError wraps a construction error with the offending rule.
type RuleError struct {
	Rule Transition
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %q %v -> %v: %v", e.Rule.Label, e.Rule.From, e.Rule.To, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
