package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadealicious/JuiceBox/grid"
)

func TestInfluenceAtZeroDistanceIsZero(t *testing.T) {
	assert.Equal(t, 0.0, grid.Influence(0, 2.0))
}

func TestInfluenceVanishesBeyondSupportRadius(t *testing.T) {
	cellSize := 2.0
	assert.Equal(t, 0.0, grid.Influence(3*cellSize, cellSize))
}

func TestInfluenceAtSupportRadiusIsNegative(t *testing.T) {
	// At d = 1.5 (the edge of the kernel's support), the w = 1-d formula
	// evaluates to a negative weight rather than 0; the kernel does not
	// clamp at zero inside its support.
	cellSize := 2.0
	assert.InDelta(t, -0.5, grid.Influence(1.5*cellSize, cellSize), 1e-9)
}

func TestInfluenceIsMonotonicallyDecreasing(t *testing.T) {
	cellSize := 1.0
	prev := grid.Influence(0.01, cellSize)
	for _, d := range []float64{0.2, 0.5, 0.8, 1.0, 1.4} {
		w := grid.Influence(d, cellSize)
		assert.LessOrEqual(t, w, prev)
		prev = w
	}
}

func TestInfluenceNegativeDistanceIsZero(t *testing.T) {
	assert.Equal(t, 0.0, grid.Influence(-1, 1.0))
}
