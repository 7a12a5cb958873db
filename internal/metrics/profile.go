package metrics

import "github.com/san-kum/crystalsim/internal/cts"

// RowConcentration computes the mean state value of each grid row,
// bottom row first. For the fluid/particle/crystal coding this is the
// vertical concentration profile of solids.
func RowConcentration(cells []cts.State, rows, cols int) []float64 {
	profile := make([]float64, rows)
	if cols == 0 {
		return profile
	}
	for r := 0; r < rows; r++ {
		sum := 0.0
		for c := 0; c < cols; c++ {
			sum += float64(cells[r*cols+c])
		}
		profile[r] = sum / float64(cols)
	}
	return profile
}

// Fraction returns the share of cells in the given state.
func Fraction(cells []cts.State, s cts.State) float64 {
	if len(cells) == 0 {
		return 0
	}
	n := 0
	for _, c := range cells {
		if c == s {
			n++
		}
	}
	return float64(n) / float64(len(cells))
}
