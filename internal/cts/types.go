package cts

import "fmt"

// State is a small integer-coded cell label. The meaning of each value
// (fluid, particle, crystal, ...) is declared by the caller at engine
// construction; the kernel only cares that values stay within the
// declared range.
type State uint8

// Orientation distinguishes physically distinct link directions, since
// a horizontal adjacency may carry different rates than a vertical one.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// PairState is the joint key describing two adjacent cells and their
// relative direction. It is always derived from current cell states,
// never stored independently.
type PairState struct {
	Tail   State
	Head   State
	Orient Orientation
}

func (p PairState) String() string {
	return fmt.Sprintf("(%d,%d,%s)", p.Tail, p.Head, p.Orient)
}

// Transition is one reaction channel: when a link in pair-state From
// fires through this channel, its endpoints are rewritten to To.
// Multiple channels may share a From; they compete in proportion to
// their rates.
type Transition struct {
	From  PairState
	To    PairState
	Rate  float64
	Label string
}

// Link is an ordered pair of adjacent cell indices. Tail < Head by
// construction; for a bottom-up row-major raster that puts the tail on
// the left of a horizontal link and at the bottom of a vertical one.
type Link struct {
	Tail   int
	Head   int
	Orient Orientation
}

// Pair derives the link's current pair-state from the cell array.
func (l Link) Pair(cells []State) PairState {
	return PairState{Tail: cells[l.Tail], Head: cells[l.Head], Orient: l.Orient}
}

// Neighbor ties an adjacent cell to the orientation of the shared link.
type Neighbor struct {
	Cell   int
	Orient Orientation
}

// Topology supplies cell count, adjacency and boundary flags. The
// engine only consumes this contract; it never constructs lattices.
type Topology interface {
	CellCount() int
	Neighbors(cell int) []Neighbor
	IsBoundary(cell int) bool
}

// Observer is notified after every executed transition. Callbacks run
// inside RunUntil with the engine already in its post-transition state.
type Observer interface {
	OnTransition(t float64, tr Transition, link Link)
}
