package cts

// linkRecord is the registry's bookkeeping for one link. The pair-state
// itself is never cached here; it is re-derived from the cell array on
// every use so it can never drift out of sync.
type linkRecord struct {
	link  Link
	epoch uint64
	// inert marks links touching a boundary cell. Such links never
	// schedule events regardless of rates, though the boundary cell's
	// state is still read when deriving neighbouring pair-states.
	inert bool
}

// linkRegistry holds the link set derived from lattice adjacency plus
// the per-cell incidence index used by onCellChanged.
type linkRegistry struct {
	links    []linkRecord
	incident [][]int32 // cell -> ids of incident links
}

// newLinkRegistry enumerates every adjacency once. A link is created
// for each (cell, neighbor) pair with cell < neighbor, so the tail is
// always the lower index; combined with a bottom-up row-major lattice
// this yields (left,right) horizontal and (bottom,top) vertical pairs.
func newLinkRegistry(topo Topology) *linkRegistry {
	n := topo.CellCount()
	r := &linkRegistry{incident: make([][]int32, n)}
	for cell := 0; cell < n; cell++ {
		for _, nb := range topo.Neighbors(cell) {
			if nb.Cell <= cell {
				continue
			}
			id := int32(len(r.links))
			r.links = append(r.links, linkRecord{
				link:  Link{Tail: cell, Head: nb.Cell, Orient: nb.Orient},
				inert: topo.IsBoundary(cell) || topo.IsBoundary(nb.Cell),
			})
			r.incident[cell] = append(r.incident[cell], id)
			r.incident[nb.Cell] = append(r.incident[nb.Cell], id)
		}
	}
	return r
}

// bump invalidates any pending event for the link by advancing its
// epoch, and returns the new epoch.
func (r *linkRegistry) bump(id int32) uint64 {
	r.links[id].epoch++
	return r.links[id].epoch
}
