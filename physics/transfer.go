package physics

import (
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// ParticlesToGrid rewrites every MAC face velocity as a weighted
// average of nearby particle velocities. Faces with no contributing
// particle are written as grid.UnknownVelocity so Extrapolate can find
// them; faces with nonzero contribution but zero total influence are
// written 0.
//
// Each face is independent: nothing another face's accumulation writes
// is read back, so per-face work can run concurrently without locking.
func ParticlesToGrid(g *grid.Grid, store *particles.Store) {
	newU := make([][]float64, g.Rows)
	for r := range newU {
		newU[r] = make([]float64, g.Cols+1)
		for c := range newU[r] {
			newU[r][c] = grid.UnknownVelocity
		}
	}
	newV := make([][]float64, g.Rows+1)
	for r := range newV {
		newV[r] = make([]float64, g.Cols)
		for c := range newV[r] {
			newV[r][c] = grid.UnknownVelocity
		}
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col <= g.Cols; col++ {
			if col == 0 || col == g.Cols {
				continue // Face lies on the domain's left/right boundary.
			}
			leftType := g.CellTypeAt(row, col-1)
			rightType := g.CellTypeAt(row, col)
			if (leftType == grid.Air && rightType == grid.Air) || (leftType == grid.Solid && rightType == grid.Solid) {
				continue
			}

			facePos := g.FacePosition(row, col, true)
			newU[row][col] = accumulateFaceVelocity(g, store, facePos, true)
		}
	}

	for row := 0; row <= g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if row == 0 || row == g.Rows {
				continue // Face lies on the domain's top/bottom boundary.
			}
			upType := g.CellTypeAt(row-1, col)
			downType := g.CellTypeAt(row, col)
			if (upType == grid.Air && downType == grid.Air) || (upType == grid.Solid && downType == grid.Solid) {
				continue
			}

			facePos := g.FacePosition(row, col, false)
			newV[row][col] = accumulateFaceVelocity(g, store, facePos, false)
		}
	}

	g.U = newU
	g.V = newV
}

// SnapshotFaces returns an independent copy of a MAC face field, used
// to capture the grid immediately before projection so ChangeGrid can
// later compute the FLIP delta.
func SnapshotFaces(field [][]float64) [][]float64 {
	return cloneFaces(field)
}

// accumulateFaceVelocity sums influence-weighted particle velocity
// contributions to one face, restricted to particles within the
// kernel's 1.5*cellSize support, and returns the weighted mean. It
// returns grid.UnknownVelocity if no particle was near enough to
// contribute, and 0 if particles were considered but their total
// influence was zero.
func accumulateFaceVelocity(g *grid.Grid, store *particles.Store, facePos core.Vector, horizontal bool) float64 {
	velocitySum := 0.0
	influenceSum := 0.0
	considered := false

	for _, cell := range g.SelectCells(facePos, 1.5*g.CellSize) {
		for _, handle := range g.ParticlesInCell(cell[0], cell[1]) {
			position, velocity, ok := store.Get(handle)
			if !ok {
				continue
			}
			distance := position.Distance(facePos)
			w := grid.Influence(distance, g.CellSize)
			if w == 0 {
				continue
			}
			considered = true
			influenceSum += w
			if horizontal {
				velocitySum += velocity.X * w
			} else {
				velocitySum += velocity.Y * w
			}
		}
	}

	if !considered {
		return grid.UnknownVelocity
	}
	if influenceSum == 0 {
		return 0
	}
	return velocitySum / influenceSum
}

func cloneFaces(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = append([]float64(nil), row...)
	}
	return dst
}
