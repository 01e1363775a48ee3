package particles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadealicious/JuiceBox/core"
	"github.com/kadealicious/JuiceBox/particles"
)

func TestAddAndGet(t *testing.T) {
	s := particles.NewStore()
	h := s.Add(core.Vector{X: 1, Y: 2}, core.Vector{X: 0, Y: -1})

	pos, vel, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, core.Vector{X: 1, Y: 2}, pos)
	assert.Equal(t, core.Vector{X: 0, Y: -1}, vel)
	assert.Equal(t, 1, s.Len())
}

func TestRemoveSwapsLastIntoFreedSlot(t *testing.T) {
	s := particles.NewStore()
	a := s.Add(core.Vector{X: 0, Y: 0}, core.Vector{})
	b := s.Add(core.Vector{X: 1, Y: 0}, core.Vector{})
	c := s.Add(core.Vector{X: 2, Y: 0}, core.Vector{})

	s.Remove(a)

	assert.Equal(t, 2, s.Len())
	_, _, ok := s.Get(a)
	assert.False(t, ok)

	posB, _, ok := s.Get(b)
	require.True(t, ok)
	assert.Equal(t, core.Vector{X: 1, Y: 0}, posB)

	posC, _, ok := s.Get(c)
	require.True(t, ok)
	assert.Equal(t, core.Vector{X: 2, Y: 0}, posC)
}

func TestHandlesStayStableAcrossRemovals(t *testing.T) {
	s := particles.NewStore()
	handles := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, s.Add(core.Vector{X: float64(i)}, core.Vector{}))
	}

	// Remove every other particle; surviving handles must still resolve
	// to their original position.
	for i := 0; i < 10; i += 2 {
		s.Remove(handles[i])
	}

	for i := 1; i < 10; i += 2 {
		pos, _, ok := s.Get(handles[i])
		require.True(t, ok)
		assert.Equal(t, float64(i), pos.X)
	}
	assert.Equal(t, 5, s.Len())
}

func TestRemoveUnknownHandleIsNoOp(t *testing.T) {
	s := particles.NewStore()
	s.Add(core.Vector{}, core.Vector{})
	assert.NotPanics(t, func() { s.Remove(999) })
	assert.Equal(t, 1, s.Len())
}

func TestLookupIndexDefaultsToUnset(t *testing.T) {
	s := particles.NewStore()
	h := s.Add(core.Vector{}, core.Vector{})
	assert.Equal(t, -1, s.LookupIndexOf(h))

	s.SetLookupIndex(h, 42)
	assert.Equal(t, 42, s.LookupIndexOf(h))
}

func TestForEachVisitsEveryLiveParticle(t *testing.T) {
	s := particles.NewStore()
	s.Add(core.Vector{X: 1}, core.Vector{})
	s.Add(core.Vector{X: 2}, core.Vector{})

	seen := 0
	s.ForEach(func(_ int, _, _ core.Vector) { seen++ })
	assert.Equal(t, 2, seen)
}
