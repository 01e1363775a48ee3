package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
	"github.com/kadealicious/JuiceBox/physics"
)

func newTestConstraints() *constraints.Constraints {
	c := constraints.New()
	c.CollisionIterationsPerFrame = 1
	c.IncompIterationsPerFrame = 10
	return c
}

// S1: a single particle in an open domain falls under gravity with no
// collision, each tick.
func TestIntegrateParticlesFreeFall(t *testing.T) {
	g := grid.New(20, 20, 1.0)
	store := particles.NewStore()
	c := newTestConstraints()

	start := g.CellCenter(5, 10)
	h := store.Add(start, core.Vector{})

	physics.IntegrateParticles(g, store, c)

	pos, vel, ok := store.Get(h)
	require.True(t, ok)

	expectedVel := c.Gravity.Scale(c.Timestep)
	assert.InDelta(t, expectedVel.Y, vel.Y, 1e-9)
	assert.Less(t, pos.Y, start.Y, "particle should fall under gravity")
}

// S2: a particle driven toward a Solid cell stops at the cell's face
// instead of passing through it. Gravity is zeroed and the particle is
// given its own velocity directly so the one-tick displacement stays
// within the CFL assumption the collision check relies on (a particle
// crosses at most one cell boundary per tick).
func TestIntegrateParticlesStopsAtSolidWall(t *testing.T) {
	g := grid.New(10, 10, 1.0)
	g.ForceEdgeSolids()
	store := particles.NewStore()
	c := newTestConstraints()
	c.Gravity = core.Vector{}
	c.Timestep = 1.0

	// Just above the face between row 8 (fluid) and row 9 (solid ring).
	start := core.Vector{X: g.CellCenter(8, 5).X, Y: 1.05}
	h := store.Add(start, core.Vector{X: 0, Y: -0.6})

	physics.IntegrateParticles(g, store, c)

	pos, vel, ok := store.Get(h)
	require.True(t, ok)

	boundary := g.CellCenter(9, 5).Y + g.CellSize/2
	assert.GreaterOrEqual(t, pos.Y, boundary, "particle should not cross into the solid row")
	assert.Equal(t, 0.0, vel.Y, "vertical velocity should zero out on collision")
}

func TestSweepNaNRemovesInvalidParticles(t *testing.T) {
	g := grid.New(5, 5, 1.0)
	store := particles.NewStore()

	good := store.Add(core.Vector{X: 1, Y: 1}, core.Vector{})
	bad := store.Add(core.Vector{X: math.NaN(), Y: 1}, core.Vector{})

	physics.SweepNaN(g, store)

	_, _, ok := store.Get(bad)
	assert.False(t, ok)

	_, _, ok = store.Get(good)
	assert.True(t, ok)
}
