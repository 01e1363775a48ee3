package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadealicious/JuiceBox/constraints"
	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
	"github.com/kadealicious/JuiceBox/particles"
	"github.com/kadealicious/JuiceBox/sources"
)

func TestAddParticlesInRadiusFillsDisk(t *testing.T) {
	g := grid.New(20, 20, 1.0)
	store := particles.NewStore()

	center := g.CellCenter(10, 10)
	count := sources.AddParticlesInRadius(g, store, center, 3.0, core.Vector{X: 1, Y: 0}, 1.0)

	assert.Greater(t, count, 0)
	assert.Equal(t, count, store.Len())
}

func TestAddParticlesInRadiusSkipsSolidCells(t *testing.T) {
	g := grid.New(20, 20, 1.0)
	g.ForceEdgeSolids()
	store := particles.NewStore()

	// Centered on the solid edge ring: only the inward half of the disk
	// should admit particles.
	center := g.CellCenter(0, 10)
	count := sources.AddParticlesInRadius(g, store, center, 3.0, core.Vector{}, 1.0)

	store.ForEach(func(_ int, position, _ core.Vector) {
		row, col := g.CellOf(position)
		assert.NotEqual(t, grid.Solid, g.CellType[g.Index(row, col)])
	})
	assert.Greater(t, count, 0)
}

func TestDeleteParticlesInRadiusRemovesOnlyWithinRange(t *testing.T) {
	g := grid.New(20, 20, 1.0)
	store := particles.NewStore()

	center := g.CellCenter(10, 10)
	inside := store.Add(center, core.Vector{})
	outside := store.Add(g.CellCenter(1, 1), core.Vector{})

	sources.DeleteParticlesInRadius(g, store, center, 2.0)

	_, _, ok := store.Get(inside)
	assert.False(t, ok)
	_, _, ok = store.Get(outside)
	assert.True(t, ok)
}

func TestDeleteParticlesInCellRemovesOnlyThatBucket(t *testing.T) {
	g := grid.New(10, 10, 1.0)
	store := particles.NewStore()

	a := store.Add(g.CellCenter(4, 4), core.Vector{})
	b := store.Add(g.CellCenter(6, 6), core.Vector{})
	g.AddParticleToLookup(a, 4, 4)
	g.AddParticleToLookup(b, 6, 6)

	sources.DeleteParticlesInCell(g, store, 4, 4)

	_, _, ok := store.Get(a)
	assert.False(t, ok)
	_, _, ok = store.Get(b)
	require.True(t, ok)
}

func TestDeleteAllParticlesEmptiesStoreAndCount(t *testing.T) {
	g := grid.New(5, 5, 1.0)
	store := particles.NewStore()
	c := constraints.New()

	store.Add(g.CellCenter(1, 1), core.Vector{})
	store.Add(g.CellCenter(2, 2), core.Vector{})
	c.ParticleCount = 2

	sources.DeleteAllParticles(g, store, c)

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, c.ParticleCount)
}
