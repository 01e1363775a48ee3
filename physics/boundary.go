package physics

import (
	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
)

// ClampToBoundary restricts every particle to [r, W-r] x [r, H-r] and
// zeroes the velocity component along any axis it was clamped on.
func ClampToBoundary(g *grid.Grid, store *particles.Store, c *constraints.Constraints) {
	width, height := g.Width(), g.Height()
	r := c.ParticleRadius

	for _, handle := range store.Handles() {
		position, velocity, ok := store.Get(handle)
		if !ok {
			continue
		}

		switch {
		case position.X < r:
			position.X = r
			velocity.X = 0
		case position.X > width-r:
			position.X = width - r
			velocity.X = 0
		}

		switch {
		case position.Y < r:
			position.Y = r
			velocity.Y = 0
		case position.Y > height-r:
			position.Y = height - r
			velocity.Y = 0
		}

		store.SetPosition(handle, position)
		store.SetVelocity(handle, velocity)
		updateParticleLookup(g, store, handle, position)
	}
}
