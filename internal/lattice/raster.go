// Package lattice provides raster-grid topologies for the automaton
// kernel. The kernel itself only sees the cts.Topology contract.
package lattice

import "github.com/san-kum/crystalsim/internal/cts"

// Raster is a rectangular 2-D grid, row-major from the bottom-left
// corner: cell r*cols+c sits in row r (bottom = 0), column c. With that
// numbering the lower-index endpoint of a link is the left cell of a
// horizontal adjacency and the bottom cell of a vertical one.
type Raster struct {
	rows, cols int
	boundary   []bool
}

// New creates a rows x cols grid with no boundary cells.
func New(rows, cols int) *Raster {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &Raster{rows: rows, cols: cols, boundary: make([]bool, rows*cols)}
}

// CloseEdges flags every perimeter cell as a boundary wall. Boundary
// cells never initiate transitions; their incident links stay inert.
func (g *Raster) CloseEdges() {
	for c := 0; c < g.cols; c++ {
		g.boundary[g.Index(0, c)] = true
		g.boundary[g.Index(g.rows-1, c)] = true
	}
	for r := 0; r < g.rows; r++ {
		g.boundary[g.Index(r, 0)] = true
		g.boundary[g.Index(r, g.cols-1)] = true
	}
}

// SetBoundary flags or unflags a single cell.
func (g *Raster) SetBoundary(cell int, b bool) { g.boundary[cell] = b }

func (g *Raster) Rows() int { return g.rows }
func (g *Raster) Cols() int { return g.cols }

// Index returns the linear cell index for (row, col).
func (g *Raster) Index(row, col int) int { return row*g.cols + col }

// RowCol returns the grid coordinates of a cell.
func (g *Raster) RowCol(cell int) (row, col int) {
	return cell / g.cols, cell % g.cols
}

// CellCount implements cts.Topology.
func (g *Raster) CellCount() int { return g.rows * g.cols }

// IsBoundary implements cts.Topology.
func (g *Raster) IsBoundary(cell int) bool { return g.boundary[cell] }

// Neighbors implements cts.Topology: the four-connected raster
// adjacency, left/right links horizontal and down/up links vertical.
func (g *Raster) Neighbors(cell int) []cts.Neighbor {
	row, col := g.RowCol(cell)
	nbs := make([]cts.Neighbor, 0, 4)
	if col > 0 {
		nbs = append(nbs, cts.Neighbor{Cell: cell - 1, Orient: cts.Horizontal})
	}
	if col < g.cols-1 {
		nbs = append(nbs, cts.Neighbor{Cell: cell + 1, Orient: cts.Horizontal})
	}
	if row > 0 {
		nbs = append(nbs, cts.Neighbor{Cell: cell - g.cols, Orient: cts.Vertical})
	}
	if row < g.rows-1 {
		nbs = append(nbs, cts.Neighbor{Cell: cell + g.cols, Orient: cts.Vertical})
	}
	return nbs
}
