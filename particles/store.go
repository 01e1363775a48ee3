// Package particles implements the simulation's particle store: a dense
// structure-of-arrays representation addressed by stable integer
// handles, rather than an entity-component registry. A handle stays
// valid for the particle's entire lifetime; deleting a particle moves
// the last live particle into the freed slot and updates that
// particle's handle mapping, so iteration stays a flat array scan with
// no tombstones.
package particles

import "github.com/kadealicious/JuiceBox/core"

// Store holds every live particle's position and velocity, indexed by a
// stable handle.
type Store struct {
	positions   []core.Vector
	velocities  []core.Vector
	lookupIndex []int // cached grid.Index(row, col) of each particle's cell.

	// handleToSlot maps a handle to its current index into positions/velocities.
	handleToSlot map[int]int
	// slotToHandle is the inverse mapping, indexed by slot.
	slotToHandle []int

	nextHandle int
}

// NewStore returns an empty particle store.
func NewStore() *Store {
	return &Store{
		handleToSlot: make(map[int]int),
	}
}

// Len returns the number of live particles.
func (s *Store) Len() int { return len(s.positions) }

// Add inserts a new particle and returns its handle.
func (s *Store) Add(position, velocity core.Vector) int {
	handle := s.nextHandle
	s.nextHandle++

	slot := len(s.positions)
	s.positions = append(s.positions, position)
	s.velocities = append(s.velocities, velocity)
	s.lookupIndex = append(s.lookupIndex, -1)
	s.slotToHandle = append(s.slotToHandle, handle)
	s.handleToSlot[handle] = slot

	return handle
}

// Remove deletes the particle identified by handle, if it exists. The
// particle occupying the last slot (if any) is moved into the freed
// slot to keep the backing arrays dense.
func (s *Store) Remove(handle int) {
	slot, ok := s.handleToSlot[handle]
	if !ok {
		return
	}

	last := len(s.positions) - 1
	if slot != last {
		s.positions[slot] = s.positions[last]
		s.velocities[slot] = s.velocities[last]
		s.lookupIndex[slot] = s.lookupIndex[last]
		movedHandle := s.slotToHandle[last]
		s.slotToHandle[slot] = movedHandle
		s.handleToSlot[movedHandle] = slot
	}

	s.positions = s.positions[:last]
	s.velocities = s.velocities[:last]
	s.lookupIndex = s.lookupIndex[:last]
	s.slotToHandle = s.slotToHandle[:last]
	delete(s.handleToSlot, handle)
}

// Get returns the position and velocity of handle, and whether it
// exists.
func (s *Store) Get(handle int) (position, velocity core.Vector, ok bool) {
	slot, found := s.handleToSlot[handle]
	if !found {
		return core.Vector{}, core.Vector{}, false
	}
	return s.positions[slot], s.velocities[slot], true
}

// SetPosition overwrites the position of handle, if it exists.
func (s *Store) SetPosition(handle int, position core.Vector) {
	if slot, ok := s.handleToSlot[handle]; ok {
		s.positions[slot] = position
	}
}

// SetVelocity overwrites the velocity of handle, if it exists.
func (s *Store) SetVelocity(handle int, velocity core.Vector) {
	if slot, ok := s.handleToSlot[handle]; ok {
		s.velocities[slot] = velocity
	}
}

// LookupIndexOf returns the cached grid lookup index of handle, or -1 if
// the particle does not exist or has never been bucketed.
func (s *Store) LookupIndexOf(handle int) int {
	slot, ok := s.handleToSlot[handle]
	if !ok {
		return -1
	}
	return s.lookupIndex[slot]
}

// SetLookupIndex overwrites the cached grid lookup index of handle, if
// it exists.
func (s *Store) SetLookupIndex(handle, index int) {
	if slot, ok := s.handleToSlot[handle]; ok {
		s.lookupIndex[slot] = index
	}
}

// Handles returns every live handle, in storage order. The returned
// slice aliases internal state and must not be mutated by the caller.
func (s *Store) Handles() []int { return s.slotToHandle }

// ForEach calls fn for every live particle. fn must not add or remove
// particles from s during iteration.
func (s *Store) ForEach(fn func(handle int, position, velocity core.Vector)) {
	for slot, handle := range s.slotToHandle {
		fn(handle, s.positions[slot], s.velocities[slot])
	}
}

// PositionOf is a convenience accessor returning the position of handle,
// or the zero vector if the particle does not exist.
func (s *Store) PositionOf(handle int) core.Vector {
	p, _, _ := s.Get(handle)
	return p
}
