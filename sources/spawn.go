// Package sources implements the simulation's source and sink objects:
// faucets that emit particles with a prescribed velocity, and drains
// that pull nearby particles in and delete them within a capture
// radius.
package sources

import (
	"math"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// AddParticlesInRadius fills a disk of the given radius centered at
// center with particles spaced by spacing, each given velocity. A
// candidate lattice point is skipped if it falls outside the grid or
// inside a Solid cell. It returns the number of particles actually
// added, and registers each new particle with the grid's spatial
// lookup immediately.
func AddParticlesInRadius(g *grid.Grid, store *particles.Store, center core.Vector, radius float64, velocity core.Vector, spacing float64) int {
	if spacing <= 0 {
		spacing = 1
	}

	count := 0
	steps := int(math.Ceil(radius / spacing))

	for dr := -steps; dr <= steps; dr++ {
		for dc := -steps; dc <= steps; dc++ {
			candidate := core.Vector{
				X: center.X + float64(dc)*spacing,
				Y: center.Y + float64(dr)*spacing,
			}
			if candidate.DistanceSq(center) > radius*radius {
				continue
			}
			if !g.IsPositionWithinGrid(candidate) {
				continue
			}
			row, col := g.CellOf(candidate)
			if g.CellType[g.Index(row, col)] == grid.Solid {
				continue
			}

			handle := store.Add(candidate, velocity)
			g.AddParticleToLookup(handle, row, col)
			store.SetLookupIndex(handle, g.Index(row, col))
			count++
		}
	}

	return count
}

// DeleteParticlesInRadius removes every particle within radius of
// center, unbucketing each from the grid's spatial lookup.
func DeleteParticlesInRadius(g *grid.Grid, store *particles.Store, center core.Vector, radius float64) {
	radiusSq := radius * radius
	for _, handle := range append([]int(nil), store.Handles()...) {
		position, _, ok := store.Get(handle)
		if !ok {
			continue
		}
		if position.DistanceSq(center) > radiusSq {
			continue
		}
		if index := store.LookupIndexOf(handle); index >= 0 {
			row, col := g.Coords(index)
			g.RemoveParticleFromLookup(handle, row, col)
		}
		store.Remove(handle)
	}
}

// DeleteParticlesInCell removes every particle bucketed at (row, col),
// used when the AddWall tool turns a cell Solid.
func DeleteParticlesInCell(g *grid.Grid, store *particles.Store, row, col int) {
	for _, handle := range append([]int(nil), g.ParticlesInCell(row, col)...) {
		g.RemoveParticleFromLookup(handle, row, col)
		store.Remove(handle)
	}
}

// DeleteAllParticles empties the store and every spatial-lookup bucket.
func DeleteAllParticles(g *grid.Grid, store *particles.Store, c *constraints.Constraints) {
	for _, handle := range append([]int(nil), store.Handles()...) {
		store.Remove(handle)
	}
	g.ClearLookup()
	c.ParticleCount = 0
}
