package grid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kadealicious/JuiceBox/core"
)

// ClearDensityValues zeroes the per-cell density estimate.
func (g *Grid) ClearDensityValues() {
	floats.Scale(0, g.Density)
}

// neighborWeights computes, for the 3x3 neighborhood of the cell
// containing p, the inverse-square-distance weight from p to each
// neighbor cell's center. It returns the per-cell weights alongside the
// coordinates they belong to, and the count of in-bounds neighbors.
func (g *Grid) neighborWeights(p core.Vector) (coords [][2]int, weights []float64, valid int) {
	row, col := g.CellOf(p)
	coords = make([][2]int, 0, 9)
	weights = make([]float64, 0, 9)

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if !g.InBounds(r, c) {
				continue
			}
			valid++
			center := g.CellCenter(r, c)
			d2 := p.DistanceSq(center)
			if d2 < 1 {
				d2 = 1
			}
			coords = append(coords, [2]int{r, c})
			weights = append(weights, 1/d2)
		}
	}
	return coords, weights, valid
}

// UpdateGridDensity accumulates one particle's contribution to the
// density field: it weights the 3x3 neighborhood of p by inverse-square
// distance to each cell center, adds each weight into that cell's
// density, and adds the mean of those weights times (9 - valid) back
// into p's own cell so particles near the domain edge are not
// under-counted relative to interior particles.
func (g *Grid) UpdateGridDensity(p core.Vector) {
	coords, weights, valid := g.neighborWeights(p)
	if valid == 0 {
		return
	}

	for i, rc := range coords {
		g.Density[g.Index(rc[0], rc[1])] += weights[i]
	}

	mean := floats.Sum(weights) / float64(len(weights))
	row, col := g.CellOf(p)
	g.Density[g.Index(row, col)] += mean * float64(9-valid)
}

// DensityAt returns a distance-weighted read of the density field near
// p: the sum of each 3x3-neighbor cell's density times the same
// inverse-square weight UpdateGridDensity uses, without the
// edge-correction term, and without mutating the grid. The write path
// corrects for clipped neighborhoods and the read path does not; the
// asymmetry is deliberate.
func (g *Grid) DensityAt(p core.Vector) float64 {
	coords, weights, valid := g.neighborWeights(p)
	if valid == 0 {
		return 0
	}
	density := 0.0
	for i, rc := range coords {
		density += weights[i] * g.Density[g.Index(rc[0], rc[1])]
	}
	return density
}
