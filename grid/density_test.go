package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/grid"
)

func TestClearDensityValuesZeroesField(t *testing.T) {
	g := grid.New(3, 3, 1.0)
	for i := range g.Density {
		g.Density[i] = 5
	}
	g.ClearDensityValues()
	for _, d := range g.Density {
		assert.Equal(t, 0.0, d)
	}
}

func TestUpdateGridDensityAddsWeightAtParticleCell(t *testing.T) {
	g := grid.New(5, 5, 1.0)
	center := g.CellCenter(2, 2)

	g.UpdateGridDensity(center)

	assert.Greater(t, g.Density[g.Index(2, 2)], 0.0)
}

func TestUpdateGridDensityIsAdditiveAcrossParticles(t *testing.T) {
	g := grid.New(5, 5, 1.0)
	center := g.CellCenter(2, 2)

	g.UpdateGridDensity(center)
	one := g.Density[g.Index(2, 2)]

	g.UpdateGridDensity(center)
	two := g.Density[g.Index(2, 2)]

	assert.InDelta(t, 2*one, two, 1e-9)
}

func TestDensityAtMatchesNeighborhoodWeight(t *testing.T) {
	g := grid.New(5, 5, 1.0)
	p := core.Vector{X: 2.3, Y: 2.7}
	g.UpdateGridDensity(p)

	d := g.DensityAt(p)
	assert.Greater(t, d, 0.0)
}
