package simulation

import (
	"sync"

	"github.com/astrolabs/schwarzsim/pkg/orbits"
	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// BlackHole holds the primary mass parameter and its derived horizon radius.
// The radius is recomputed on every mass change; it is never read stale.
type BlackHole struct {
	MassSolar             float64
	SchwarzschildRadiusKM float64
}

// State is the single mutable simulation aggregate: one black hole, the
// active orbit descriptors in ascending radius order, and the global
// animation parameters. All transitions go through Apply, which serializes
// on an internal mutex so the read-modify-write of the orbit slice is never
// interleaved. No partially updated state is observable: a failed event
// leaves the aggregate exactly as it was.
type State struct {
	mu        sync.Mutex
	blackHole BlackHole
	orbits    []orbits.Descriptor
	speed     float64
	running   bool
	clock     float64 // elapsed simulation seconds, frozen while paused
}

// New builds a running state with the given mass and orbit count, at
// animation speed 1.
func New(massSolar float64, orbitCount int) (*State, error) {
	rs, err := relativity.SchwarzschildRadius(massSolar)
	if err != nil {
		return nil, err
	}
	descs, err := orbits.Generate(massSolar, orbitCount)
	if err != nil {
		return nil, err
	}
	return &State{
		blackHole: BlackHole{MassSolar: massSolar, SchwarzschildRadiusKM: rs},
		orbits:    descs,
		speed:     1.0,
		running:   true,
	}, nil
}

// BlackHole returns the current mass parameters.
func (s *State) BlackHole() BlackHole {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blackHole
}

// Orbits returns a copy of the active orbit descriptors, radius ascending.
func (s *State) Orbits() []orbits.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]orbits.Descriptor, len(s.orbits))
	copy(out, s.orbits)
	return out
}

// AnimationSpeed returns the current speed multiplier.
func (s *State) AnimationSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// Running reports whether ticks currently advance the simulation.
func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Clock returns the elapsed simulation time in seconds.
func (s *State) Clock() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}
