package physics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/grid"
)

const (
	overRelaxation = 1.99
	stiffness      = 1.0
)

// MakeIncompressible runs constraints.IncompIterationsPerFrame
// Gauss-Seidel sweeps over every Fluid cell, driving divergence toward
// zero and penalizing cells compressed above particle_rest_density.
// particle_rest_density is computed once, as the mean of the density
// field, the first time this is called with a zero rest density.
func MakeIncompressible(g *grid.Grid, c *constraints.Constraints) {
	if c.ParticleRestDensity == 0 {
		c.ParticleRestDensity = stat.Mean(g.Density, nil)
	}

	for iter := 0; iter < c.IncompIterationsPerFrame; iter++ {
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				if g.CellType[g.Index(row, col)] != grid.Fluid {
					continue
				}

				sLeft := g.GetCellTypeValue(row, col-1)
				sRight := g.GetCellTypeValue(row, col+1)
				sUp := g.GetCellTypeValue(row-1, col)
				sDown := g.GetCellTypeValue(row+1, col)
				s := sLeft + sRight + sUp + sDown
				if s == 0 {
					continue
				}

				divergence := (g.U[row][col+1] - g.U[row][col]) + (g.V[row][col] - g.V[row+1][col])

				if c.ParticleRestDensity > 0 {
					compression := g.Density[g.Index(row, col)] - c.ParticleRestDensity
					if compression > 0 {
						divergence -= stiffness * compression
					}
				}

				momentum := overRelaxation * (-divergence) / float64(s)

				g.U[row][col] -= momentum * float64(sLeft)
				g.U[row][col+1] += momentum * float64(sRight)
				g.V[row][col] += momentum * float64(sUp)
				g.V[row+1][col] -= momentum * float64(sDown)
			}
		}
	}
}
