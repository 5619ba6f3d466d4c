package simulation

import (
	"math"

	"cosmossdk.io/errors"

	"github.com/astrolabs/schwarzsim/pkg/orbits"
	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// VisualTimeScale compresses real orbital angular velocity into a rate
// suitable for on-screen animation. Keplerian periods this close to a
// stellar-mass horizon are milliseconds, so the raw 2π/T rate would be
// thousands of radians per second. This is a presentation pacing knob,
// not a physical constant.
const VisualTimeScale = 1e-4

// Event is a change request consumed by State.Apply. The host UI owns the
// event loop: it builds an event from user input, applies it, and re-renders
// from the accessors. UI code never mutates derived fields directly.
type Event interface {
	isEvent()
}

// SetMass changes the black hole mass, preserving each orbit's radius and
// phase while recomputing the derived fields.
type SetMass struct {
	MassSolar float64
}

// SetOrbitCount regenerates the orbit set at the current mass. Phases reset
// to zero.
type SetOrbitCount struct {
	Count int
}

// SetSpeed stores a new animation speed multiplier.
type SetSpeed struct {
	Multiplier float64
}

// Tick advances every orbit phase and the logical clock by DT seconds of
// wall time. It has no effect while paused.
type Tick struct {
	DT float64
}

// TogglePause flips the run/pause flag. Pause freezes both the clock and
// the orbit phases.
type TogglePause struct{}

// Reset zeroes all orbit phases and the clock without changing mass, orbit
// count, or speed.
type Reset struct{}

// ApplyPreset sets the mass from a named preset.
type ApplyPreset struct {
	Preset Preset
}

func (SetMass) isEvent()       {}
func (SetOrbitCount) isEvent() {}
func (SetSpeed) isEvent()      {}
func (Tick) isEvent()          {}
func (TogglePause) isEvent()   {}
func (Reset) isEvent()         {}
func (ApplyPreset) isEvent()   {}

// Apply executes one transition. On error the state is unchanged.
func (s *State) Apply(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case SetMass:
		return s.setMass(e.MassSolar)
	case SetOrbitCount:
		return s.setOrbitCount(e.Count)
	case SetSpeed:
		return s.setSpeed(e.Multiplier)
	case Tick:
		return s.tick(e.DT)
	case TogglePause:
		s.running = !s.running
		return nil
	case Reset:
		for i := range s.orbits {
			s.orbits[i].PhaseAngle = 0
		}
		s.clock = 0
		return nil
	case ApplyPreset:
		mass, err := PresetMass(e.Preset)
		if err != nil {
			return err
		}
		return s.setMass(mass)
	default:
		return errors.Wrapf(relativity.ErrInvalidParameter, "unknown event type %T", ev)
	}
}

func (s *State) setMass(massSolar float64) error {
	if massSolar <= 0 {
		return errors.Wrapf(relativity.ErrInvalidParameter, "mass must be positive, got %g", massSolar)
	}
	rs, err := relativity.SchwarzschildRadius(massSolar)
	if err != nil {
		return err
	}
	// Recompute is atomic, so a preserved radius swallowed by the new
	// horizon rejects the whole transition.
	if err := orbits.Recompute(s.orbits, massSolar); err != nil {
		return err
	}
	s.blackHole = BlackHole{MassSolar: massSolar, SchwarzschildRadiusKM: rs}
	return nil
}

func (s *State) setOrbitCount(count int) error {
	if count < 0 {
		return errors.Wrapf(relativity.ErrInvalidParameter, "orbit count must be non-negative, got %d", count)
	}
	descs, err := orbits.Generate(s.blackHole.MassSolar, count)
	if err != nil {
		return err
	}
	s.orbits = descs
	return nil
}

func (s *State) setSpeed(multiplier float64) error {
	if multiplier <= 0 {
		return errors.Wrapf(relativity.ErrInvalidParameter, "speed multiplier must be positive, got %g", multiplier)
	}
	s.speed = multiplier
	return nil
}

func (s *State) tick(dt float64) error {
	if dt < 0 {
		return errors.Wrapf(relativity.ErrInvalidParameter, "tick duration must be non-negative, got %g", dt)
	}
	if !s.running {
		return nil
	}
	for i := range s.orbits {
		o := &s.orbits[i]
		omega := 2 * math.Pi / o.OrbitalPeriodS * VisualTimeScale
		o.PhaseAngle += omega * o.TimeDilationFactor * s.speed * dt
		o.PhaseAngle = math.Mod(o.PhaseAngle, 2*math.Pi)
	}
	s.clock += dt
	return nil
}
