package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
	"github.com/kadealicious/JuiceBox/physics"
)

func TestClampToBoundaryRestrictsPositionAndZeroesVelocity(t *testing.T) {
	g := grid.New(10, 10, 1.0)
	store := particles.NewStore()
	c := newTestConstraints()
	c.ParticleRadius = 0.5

	escaped := store.Add(core.Vector{X: -3, Y: 25}, core.Vector{X: -1, Y: 2})

	physics.ClampToBoundary(g, store, c)

	pos, vel, ok := store.Get(escaped)
	require.True(t, ok)
	assert.Equal(t, c.ParticleRadius, pos.X)
	assert.Equal(t, g.Height()-c.ParticleRadius, pos.Y)
	assert.Equal(t, 0.0, vel.X)
	assert.Equal(t, 0.0, vel.Y)
}

func TestClampToBoundaryLeavesInteriorParticlesAlone(t *testing.T) {
	g := grid.New(10, 10, 1.0)
	store := particles.NewStore()
	c := newTestConstraints()
	c.ParticleRadius = 0.5

	inside := store.Add(core.Vector{X: 5, Y: 5}, core.Vector{X: 1, Y: -1})

	physics.ClampToBoundary(g, store, c)

	pos, vel, ok := store.Get(inside)
	require.True(t, ok)
	assert.Equal(t, core.Vector{X: 5, Y: 5}, pos)
	assert.Equal(t, core.Vector{X: 1, Y: -1}, vel)
}
