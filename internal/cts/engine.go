package cts

import (
	"fmt"
	"math/rand"
)

// Engine owns the cell-state array, the link registry, the event queue
// and the simulation clock. Nothing else may mutate cell states;
// collaborators read snapshots between RunUntil calls.
type Engine struct {
	topo      Topology
	table     *Table
	reg       *linkRegistry
	sched     *scheduler
	rng       *rand.Rand
	cells     []State
	now       float64
	executed  uint64
	observers []Observer
}

// New validates the declared states, rules and initial condition and
// assembles a ready-to-run engine. Any validation failure aborts
// construction; the engine is never returned partially built.
func New(topo Topology, states []string, rules []Transition, init []State, seed int64) (*Engine, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	table, err := NewTable(states, rules)
	if err != nil {
		return nil, err
	}
	if len(init) != topo.CellCount() {
		return nil, fmt.Errorf("%w: got %d cells for %d nodes", ErrCellCount, len(init), topo.CellCount())
	}
	for i, s := range init {
		if int(s) >= len(states) {
			return nil, fmt.Errorf("cell %d has state %d: %w", i, s, ErrUnknownState)
		}
	}

	e := &Engine{
		topo:  topo,
		table: table,
		reg:   newLinkRegistry(topo),
		sched: &scheduler{},
		rng:   rand.New(rand.NewSource(seed)),
		cells: append([]State(nil), init...),
	}
	for id := range e.reg.links {
		e.scheduleLink(int32(id))
	}
	return e, nil
}

// AddObserver registers an observer for executed transitions.
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Now returns the current simulation time.
func (e *Engine) Now() float64 { return e.now }

// Executed returns the number of transitions executed so far.
func (e *Engine) Executed() uint64 { return e.executed }

// StateOf returns the current state of one cell.
func (e *Engine) StateOf(cell int) State { return e.cells[cell] }

// Snapshot returns a copy of the full cell-state array. The copy is
// stable regardless of later RunUntil calls.
func (e *Engine) Snapshot() []State {
	return append([]State(nil), e.cells...)
}

// Table exposes the engine's transition table for read-only queries.
func (e *Engine) Table() *Table { return e.table }

// Pending returns the number of queued events, stale entries included.
func (e *Engine) Pending() int { return e.sched.len() }

// RunUntil executes pending events in time order until the next event
// would exceed target, then advances the clock to target. Events beyond
// target stay queued for a later call; the engine resumes exactly where
// it left off. A target at or before the current time is a no-op.
func (e *Engine) RunUntil(target float64) {
	if target <= e.now {
		return
	}
	for {
		next, ok := e.sched.peek()
		if !ok || next.at > target {
			// No more work before the horizon. An empty queue means the
			// configuration is fully absorbing; just fast-forward.
			e.now = target
			return
		}
		ev := e.sched.pop()
		rec := &e.reg.links[ev.link]
		if ev.epoch != rec.epoch {
			// Superseded by a neighbouring transition. Normal outcome of
			// lazy invalidation, not an error.
			continue
		}
		e.now = ev.at
		e.fire(rec.link)
	}
}

// fire resolves the destination channel for the link's current
// pair-state and applies it. This is the only place cell state mutates.
func (e *Engine) fire(l Link) {
	tr, ok := e.choose(l.Pair(e.cells))
	if !ok {
		// A fresh-epoch event always corresponds to the pair-state it
		// was scheduled for, which had positive total rate.
		panic(fmt.Sprintf("cts: live event for absorbing pair-state on link %v", l))
	}
	e.cells[l.Tail] = tr.To.Tail
	e.cells[l.Head] = tr.To.Head
	e.executed++

	// Re-derive every link incident to either endpoint, the just-fired
	// one included: it now reflects the new pair-state.
	e.onCellChanged(l.Tail)
	e.onCellChanged(l.Head)

	for _, o := range e.observers {
		o.OnTransition(e.now, tr, l)
	}
}

// choose picks a destination channel. A single candidate is
// deterministic; competing channels are sampled in proportion to rate.
func (e *Engine) choose(p PairState) (Transition, bool) {
	rules := e.table.RulesFor(p)
	switch len(rules) {
	case 0:
		return Transition{}, false
	case 1:
		return rules[0], true
	}
	x := e.rng.Float64() * e.table.TotalRate(p)
	for _, tr := range rules {
		x -= tr.Rate
		if x < 0 {
			return tr, true
		}
	}
	return rules[len(rules)-1], true
}

// onCellChanged cancels live scheduling for every link incident to the
// cell by bumping its epoch, and reschedules each link that is still
// active under its new pair-state.
func (e *Engine) onCellChanged(cell int) {
	for _, id := range e.reg.incident[cell] {
		e.reg.bump(id)
		e.scheduleLink(id)
	}
}

// scheduleLink queues a fresh event for the link if it is active:
// not boundary-inert and with positive total outgoing rate.
func (e *Engine) scheduleLink(id int32) {
	rec := &e.reg.links[id]
	if rec.inert {
		return
	}
	total := e.table.TotalRate(rec.link.Pair(e.cells))
	if total <= 0 {
		return
	}
	e.sched.schedule(e.rng, e.now, total, id, rec.epoch)
}
