package simulation

import (
	"cosmossdk.io/errors"
)

// Record is the flat persisted form of the user-adjustable parameters.
// Derived state (radii, phases, the clock) is never persisted; it is
// recomputed when the record is replayed.
type Record struct {
	Mass           float64 `json:"mass" yaml:"mass" mapstructure:"mass"`
	OrbitCount     int     `json:"orbit_count" yaml:"orbit_count" mapstructure:"orbit_count"`
	AnimationSpeed float64 `json:"animation_speed" yaml:"animation_speed" mapstructure:"animation_speed"`
}

// Snapshot captures the persistable parameters of a state.
func Snapshot(s *State) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Record{
		Mass:           s.blackHole.MassSolar,
		OrbitCount:     len(s.orbits),
		AnimationSpeed: s.speed,
	}
}

// Validate checks that every required field carries a usable value.
func (r Record) Validate() error {
	if r.Mass <= 0 {
		return errors.Wrapf(ErrConfig, "mass must be positive, got %g", r.Mass)
	}
	if r.OrbitCount < 0 {
		return errors.Wrapf(ErrConfig, "orbit_count must be non-negative, got %d", r.OrbitCount)
	}
	if r.AnimationSpeed <= 0 {
		return errors.Wrapf(ErrConfig, "animation_speed must be positive, got %g", r.AnimationSpeed)
	}
	return nil
}

// Events converts a validated record into the transitions that replay it
// onto an existing state. The orbit set is cleared before the mass change:
// orbits generated at the old mass can sit inside the new horizon, which
// would reject the SetMass under the preservation contract.
func (r Record) Events() ([]Event, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []Event{
		SetOrbitCount{Count: 0},
		SetMass{MassSolar: r.Mass},
		SetOrbitCount{Count: r.OrbitCount},
		SetSpeed{Multiplier: r.AnimationSpeed},
	}, nil
}

// NewStateFromRecord builds a fresh state from a validated record.
func NewStateFromRecord(r Record) (*State, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	s, err := New(r.Mass, r.OrbitCount)
	if err != nil {
		return nil, err
	}
	if err := s.Apply(SetSpeed{Multiplier: r.AnimationSpeed}); err != nil {
		return nil, err
	}
	return s, nil
}
