package orbits

import (
	"math"

	"cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/astrolabs/schwarzsim/internal/types"
	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// Margin above the horizon at which a fall trajectory stops sampling, in
// multiples of rs. Keeps the final sample inside the dilation domain.
const fallFloorFactor = 1.01

// FallTrajectory samples a radial free fall from initialRKM down to just
// above the horizon. The fall velocity is the free-fall-from-rest speed
// c·√(rs/r), clamped to c. Fails with ErrDomain if the starting radius is
// already at or inside the horizon.
func FallTrajectory(initialRKM, rsKM float64, points int) ([]types.FallRow, error) {
	if rsKM <= 0 {
		return nil, errors.Wrapf(relativity.ErrInvalidParameter, "schwarzschild radius must be positive, got %g", rsKM)
	}
	if points < 2 {
		return nil, errors.Wrapf(relativity.ErrInvalidParameter, "need at least 2 trajectory points, got %d", points)
	}
	if initialRKM <= fallFloorFactor*rsKM {
		return nil, errors.Wrapf(relativity.ErrDomain, "starting radius %g km is at or inside the horizon margin %g km", initialRKM, fallFloorFactor*rsKM)
	}

	radii := make([]float64, points)
	floats.Span(radii, initialRKM, fallFloorFactor*rsKM)

	rows := make([]types.FallRow, points)
	for i, r := range radii {
		factor, err := relativity.TimeDilation(r, rsKM)
		if err != nil {
			return nil, err
		}

		vFall := relativity.C * math.Sqrt(rsKM/r)
		if vFall > relativity.C {
			vFall = relativity.C
		}

		rows[i] = types.FallRow{
			Step:               i,
			RadiusKM:           r,
			RadiusRS:           r / rsKM,
			TimeDilationFactor: factor,
			FallVelocityMS:     vFall,
			FallVelocityC:      vFall / relativity.C,
		}
	}
	return rows, nil
}
