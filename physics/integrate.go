// Package physics implements the stateless fluid simulation phases that
// operate over a grid.Grid and a particles.Store: integration,
// separation, boundary clamping, particle-to-grid transfer, projection,
// extrapolation, and grid-to-particle interpolation.
package physics

import (
	"math"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

const collisionTolerance = 0.1

// IntegrateParticles advances every particle's position and velocity by
// one timestep, resolving collisions with Solid cells along the way,
// then re-buckets each particle in the grid's spatial lookup and folds
// its new position into the density field. The density field is cleared
// once, before the first particle is processed, matching the single
// per-tick clear described for this phase.
func IntegrateParticles(g *grid.Grid, store *particles.Store, c *constraints.Constraints) {
	g.ClearDensityValues()

	for _, handle := range store.Handles() {
		position, velocity, ok := store.Get(handle)
		if !ok {
			continue
		}

		targetVelocity := velocity.Add(c.Gravity.Scale(c.Timestep))
		targetPosition := position.Add(targetVelocity.Scale(c.Timestep))

		newPosition, newVelocity := integrateWithCollision(g, position, targetPosition, targetVelocity)

		store.SetPosition(handle, newPosition)
		store.SetVelocity(handle, newVelocity)

		updateParticleLookup(g, store, handle, newPosition)
		g.UpdateGridDensity(newPosition)
	}
}

// integrateWithCollision resolves one particle's move from position
// toward targetPosition/targetVelocity, stopping it at any solid face it
// would otherwise cross.
func integrateWithCollision(g *grid.Grid, position, targetPosition, targetVelocity core.Vector) (core.Vector, core.Vector) {
	targetRow, targetCol := g.HypotheticalCellOf(targetPosition)

	if g.IsPositionWithinGrid(targetPosition) && g.GetCellTypeValue(targetRow, targetCol) != 0 {
		return targetPosition, targetVelocity
	}

	center := g.CellCenter(targetRow, targetCol)
	half := g.CellSize / 2
	left, right := center.X-half, center.X+half
	bottom, top := center.Y-half, center.Y+half

	newPosition := position
	newVelocity := targetVelocity

	switch {
	case position.X <= left && targetPosition.X >= left:
		newPosition.X = left - collisionTolerance
		newVelocity.X = 0
	case position.X >= right && targetPosition.X <= right:
		newPosition.X = right + collisionTolerance
		newVelocity.X = 0
	default:
		newPosition.X = targetPosition.X
		newVelocity.X = targetVelocity.X
	}

	switch {
	case position.Y <= bottom && targetPosition.Y >= bottom:
		newPosition.Y = bottom - collisionTolerance
		newVelocity.Y = 0
	case position.Y >= top && targetPosition.Y <= top:
		newPosition.Y = top + collisionTolerance
		newVelocity.Y = 0
	default:
		newPosition.Y = targetPosition.Y
		newVelocity.Y = targetVelocity.Y
	}

	return newPosition, newVelocity
}

// updateParticleLookup moves handle between spatial-lookup buckets if
// its cell changed following integration.
func updateParticleLookup(g *grid.Grid, store *particles.Store, handle int, position core.Vector) {
	row, col := g.CellOf(position)
	newIndex := g.Index(row, col)
	oldIndex := store.LookupIndexOf(handle)

	if newIndex == oldIndex {
		return
	}

	if oldIndex >= 0 {
		oldRow, oldCol := g.Coords(oldIndex)
		g.RemoveParticleFromLookup(handle, oldRow, oldCol)
	}
	g.AddParticleToLookup(handle, row, col)
	store.SetLookupIndex(handle, newIndex)
}

// SweepNaN deletes every particle whose position has a NaN component,
// the final phase of every tick.
func SweepNaN(g *grid.Grid, store *particles.Store) {
	for _, handle := range append([]int(nil), store.Handles()...) {
		position, _, ok := store.Get(handle)
		if !ok {
			continue
		}
		if math.IsNaN(position.X) || math.IsNaN(position.Y) {
			if index := store.LookupIndexOf(handle); index >= 0 {
				row, col := g.Coords(index)
				g.RemoveParticleFromLookup(handle, row, col)
			}
			store.Remove(handle)
		}
	}
}
