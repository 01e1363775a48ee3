package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadealicious/JuiceBox/physics"
)

func TestChangeGridComputesElementwiseDifference(t *testing.T) {
	old := [][]float64{{1, 2}, {3, 4}}
	new := [][]float64{{1.5, 2.5}, {2, 10}}

	change := physics.ChangeGrid(old, new)

	assert.Equal(t, 0.5, change[0][0])
	assert.Equal(t, 0.5, change[0][1])
	assert.Equal(t, -1.0, change[1][0])
	assert.Equal(t, 6.0, change[1][1])
}

func TestChangeGridZeroWhenFieldsEqual(t *testing.T) {
	field := [][]float64{{1, 2}, {3, 4}}
	change := physics.ChangeGrid(field, field)
	for _, row := range change {
		for _, v := range row {
			assert.Equal(t, 0.0, v)
		}
	}
}
