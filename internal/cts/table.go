package cts

// Table maps pair-states to their competing transition channels.
// It is built once, validated eagerly, and read-only afterwards, so it
// is safe for concurrent readers without locking.
type Table struct {
	states   []string
	channels map[PairState][]Transition
	totals   map[PairState]float64
}

// NewTable validates the rule list against the declared state labels
// (index-coded: State(i) is named states[i]) and builds the lookup.
func NewTable(states []string, rules []Transition) (*Table, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	t := &Table{
		states:   states,
		channels: make(map[PairState][]Transition, len(rules)),
		totals:   make(map[PairState]float64, len(rules)),
	}
	seen := make(map[[2]PairState]bool, len(rules))
	for _, r := range rules {
		if !t.declared(r.From.Tail) || !t.declared(r.From.Head) ||
			!t.declared(r.To.Tail) || !t.declared(r.To.Head) {
			return nil, &RuleError{Rule: r, Err: ErrUnknownState}
		}
		if r.Rate <= 0 {
			return nil, &RuleError{Rule: r, Err: ErrNonPositiveRate}
		}
		key := [2]PairState{r.From, r.To}
		if seen[key] {
			return nil, &RuleError{Rule: r, Err: ErrDuplicateRule}
		}
		seen[key] = true
		t.channels[r.From] = append(t.channels[r.From], r)
		t.totals[r.From] += r.Rate
	}
	return t, nil
}

// NumStates returns the size of the declared state set.
func (t *Table) NumStates() int { return len(t.states) }

// StateName returns the declared label for s, or an empty string for
// an out-of-range value.
func (t *Table) StateName(s State) string {
	if int(s) >= len(t.states) {
		return ""
	}
	return t.states[s]
}

// RulesFor returns the transition channels registered for p, in
// declaration order. Nil means p is absorbing.
func (t *Table) RulesFor(p PairState) []Transition {
	return t.channels[p]
}

// TotalRate returns the summed outgoing rate of p, 0 if none.
func (t *Table) TotalRate(p PairState) float64 {
	return t.totals[p]
}

func (t *Table) declared(s State) bool {
	return int(s) < len(t.states)
}
