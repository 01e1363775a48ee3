package physics

import (
	"math"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// bilerpCellVelocity samples the four cell-center velocities
// surrounding p and blends them by p's fractional position within that
// lattice. Corners that fall outside the grid are clamped to the
// nearest valid cell rather than treated as zero, so the field degrades
// gracefully at the domain edge instead of pulling samples toward zero.
//
// Weights are the standard (1-tx)(1-ty), tx(1-ty), (1-tx)ty, tx*ty.
func bilerpCellVelocity(g *grid.Grid, u, v [][]float64, p core.Vector) core.Vector {
	half := g.CellSize / 2
	colF := (p.X - half) / g.CellSize
	rowF := (g.Height() - p.Y - half) / g.CellSize

	c0 := int(math.Floor(colF))
	r0 := int(math.Floor(rowF))
	tx := colF - math.Floor(colF)
	ty := rowF - math.Floor(rowF)

	c1, r1 := c0+1, r0+1

	row0 := clampIndex(r0, g.Rows-1)
	row1 := clampIndex(r1, g.Rows-1)
	col0 := clampIndex(c0, g.Cols-1)
	col1 := clampIndex(c1, g.Cols-1)

	v00 := faceAveragedVelocity(u, v, g, row0, col0)
	v01 := faceAveragedVelocity(u, v, g, row0, col1)
	v10 := faceAveragedVelocity(u, v, g, row1, col0)
	v11 := faceAveragedVelocity(u, v, g, row1, col1)

	top := v00.Scale(1 - tx).Add(v01.Scale(tx))
	bottom := v10.Scale(1 - tx).Add(v11.Scale(tx))
	return top.Scale(1 - ty).Add(bottom.Scale(ty))
}

func faceAveragedVelocity(u, v [][]float64, g *grid.Grid, row, col int) core.Vector {
	uVel := (u[row][col] + u[row][col+1]) / 2
	vVel := (v[row][col] + v[row+1][col]) / 2
	return core.Vector{X: uVel, Y: vVel}
}

func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// GridToParticles blends each fluid particle's new velocity from the
// PIC sample (grid.U/V) and the FLIP sample (the change grid added to
// the particle's current velocity), weighted by grid_particle_ratio,
// then adds one timestep of gravity.
func GridToParticles(g *grid.Grid, store *particles.Store, changeU, changeV [][]float64, c *constraints.Constraints) {
	alpha := c.GridParticleRatio

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.CellType[g.Index(row, col)] != grid.Fluid {
				continue
			}

			for _, handle := range g.ParticlesInCell(row, col) {
				position, velocity, ok := store.Get(handle)
				if !ok {
					continue
				}

				picVelocity := bilerpCellVelocity(g, g.U, g.V, position)
				changeVelocity := bilerpCellVelocity(g, changeU, changeV, position)
				flipVelocity := velocity.Add(changeVelocity)

				newVelocity := picVelocity.Scale(alpha).
					Add(flipVelocity.Scale(1 - alpha)).
					Add(c.Gravity.Scale(c.Timestep))

				store.SetVelocity(handle, newVelocity)
			}
		}
	}
}
