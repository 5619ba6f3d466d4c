package orbits

import (
	"cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// Radius grid bounds in multiples of the Schwarzschild radius. The lower
// bound keeps every generated orbit outside the photon sphere, where the
// dilation formula is defined. The upper bound is a visualization tunable,
// not a physical constant.
const (
	InnerRadiusFactor = 1.5
	OuterRadiusFactor = 5.0
)

// Band classifies an orbit by its time dilation factor. It is used only for
// presentation (color mapping in a host UI), never for physics.
type Band string

const (
	BandNear         Band = "near"         // factor < 0.3
	BandIntermediate Band = "intermediate" // factor < 0.6
	BandFar          Band = "far"
)

// Classify returns the presentation band for a dilation factor.
func Classify(factor float64) Band {
	switch {
	case factor < 0.3:
		return BandNear
	case factor < 0.6:
		return BandIntermediate
	default:
		return BandFar
	}
}

// Descriptor holds the per-orbit state of one test particle. RadiusKM and
// PhaseAngle survive mass changes; the derived fields are recomputed.
type Descriptor struct {
	RadiusKM           float64
	TimeDilationFactor float64
	OrbitalPeriodS     float64
	PhaseAngle         float64 // radians, wrapped into [0, 2π)
	Band               Band
}

// Generate derives count orbit descriptors for a black hole of the given
// mass, on a linear radius grid between InnerRadiusFactor·rs and
// OuterRadiusFactor·rs. Radii ascend; phases start at zero. count == 0
// yields an empty slice; a single orbit sits at the inner bound.
func Generate(massSolar float64, count int) ([]Descriptor, error) {
	if count < 0 {
		return nil, errors.Wrapf(relativity.ErrInvalidParameter, "orbit count must be non-negative, got %d", count)
	}
	rs, err := relativity.SchwarzschildRadius(massSolar)
	if err != nil {
		return nil, err
	}

	radii := make([]float64, count)
	switch count {
	case 0:
	case 1:
		radii[0] = InnerRadiusFactor * rs
	default:
		floats.Span(radii, InnerRadiusFactor*rs, OuterRadiusFactor*rs)
	}

	descs := make([]Descriptor, count)
	for i, r := range radii {
		factor, err := relativity.TimeDilation(r, rs)
		if err != nil {
			return nil, err
		}
		period, err := relativity.OrbitalPeriod(r, massSolar)
		if err != nil {
			return nil, err
		}
		descs[i] = Descriptor{
			RadiusKM:           r,
			TimeDilationFactor: factor,
			OrbitalPeriodS:     period,
			Band:               Classify(factor),
		}
	}
	return descs, nil
}

// Recompute refreshes the derived fields of existing descriptors for a new
// black hole mass, preserving each orbit's radius and phase angle. This is
// the mass-only update path: regenerating instead would visibly teleport
// the particles. The update is atomic: if any preserved radius falls at or
// inside the new horizon the whole slice is left untouched and the domain
// error is returned.
func Recompute(descs []Descriptor, massSolar float64) error {
	rs, err := relativity.SchwarzschildRadius(massSolar)
	if err != nil {
		return err
	}
	factors := make([]float64, len(descs))
	periods := make([]float64, len(descs))
	for i := range descs {
		factors[i], err = relativity.TimeDilation(descs[i].RadiusKM, rs)
		if err != nil {
			return err
		}
		periods[i], err = relativity.OrbitalPeriod(descs[i].RadiusKM, massSolar)
		if err != nil {
			return err
		}
	}
	for i := range descs {
		descs[i].TimeDilationFactor = factors[i]
		descs[i].OrbitalPeriodS = periods[i]
		descs[i].Band = Classify(factors[i])
	}
	return nil
}
