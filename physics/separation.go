package physics

import (
	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// PushParticlesApart runs constraints.CollisionIterationsPerFrame passes
// of pairwise separation over every cell's 3x3 neighborhood, reintegrating
// each pushed particle through the same wall-collision response used by
// IntegrateParticles so that separation cannot push a particle into a
// Solid cell.
func PushParticlesApart(g *grid.Grid, store *particles.Store, c *constraints.Constraints) {
	collisionRadius := c.ParticleRadius * 2
	collisionRadiusSq := collisionRadius * collisionRadius

	for iter := 0; iter < c.CollisionIterationsPerFrame; iter++ {
		for index := 0; index < g.Rows*g.Cols; index++ {
			row, col := g.Coords(index)
			nearby := g.NearbyParticles(row, col)

			for i, a := range nearby {
				for _, b := range nearby[i+1:] {
					separatePair(g, store, a, b, collisionRadius, collisionRadiusSq)
				}
			}
		}
	}
}

func separatePair(g *grid.Grid, store *particles.Store, a, b int, collisionRadius, collisionRadiusSq float64) {
	posA, velA, okA := store.Get(a)
	posB, velB, okB := store.Get(b)
	if !okA || !okB {
		return
	}

	delta := posA.Sub(posB)
	distanceSq := delta.LengthSq()
	if distanceSq > collisionRadiusSq || distanceSq <= 0 {
		return
	}

	distance := delta.Length()
	scale := 0.5 * (collisionRadius - distance) / distance
	delta = delta.Scale(scale)

	targetA := posA.Add(delta)
	targetB := posB.Sub(delta)

	newPosA, newVelA := integrateWithCollision(g, posA, targetA, velA)
	newPosB, newVelB := integrateWithCollision(g, posB, targetB, velB)

	store.SetPosition(a, newPosA)
	store.SetVelocity(a, newVelA)
	updateParticleLookup(g, store, a, newPosA)

	store.SetPosition(b, newPosB)
	store.SetVelocity(b, newVelB)
	updateParticleLookup(g, store, b, newPosB)
}
