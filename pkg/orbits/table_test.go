package orbits

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

func TestTableRows(t *testing.T) {
	rows, err := Table(10, 6)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.RadiusRS, InnerRadiusFactor-1e-9)
		assert.LessOrEqual(t, row.RadiusRS, OuterRadiusFactor+1e-9)

		// Circular orbit velocity stays below c outside the photon sphere.
		assert.Greater(t, row.OrbitalVelocityC, 0.0)
		assert.Less(t, row.OrbitalVelocityC, 1.0)
		assert.InEpsilon(t, row.OrbitalVelocityMS/relativity.C, row.OrbitalVelocityC, 1e-12)

		// The perceived period is stretched by the dilation factor.
		assert.InEpsilon(t, row.OrbitalPeriodS/row.TimeDilationFactor, row.PerceivedPeriodS, 1e-12)
		assert.Greater(t, row.PerceivedPeriodS, row.OrbitalPeriodS)
	}
}

func TestFallTrajectory(t *testing.T) {
	rs := 29.53
	rows, err := FallTrajectory(10*rs, rs, 20)
	require.NoError(t, err)
	require.Len(t, rows, 20)

	assert.InEpsilon(t, 10.0, rows[0].RadiusRS, 1e-9)
	assert.InEpsilon(t, fallFloorFactor, rows[len(rows)-1].RadiusRS, 1e-9)

	for i, row := range rows {
		assert.Equal(t, i, row.Step)
		if i > 0 {
			assert.Less(t, row.RadiusKM, rows[i-1].RadiusKM, "radius must decrease")
			assert.Greater(t, row.FallVelocityMS, rows[i-1].FallVelocityMS, "fall speeds up")
		}
		assert.LessOrEqual(t, row.FallVelocityC, 1.0)
		assert.Greater(t, row.TimeDilationFactor, 0.0)
		assert.False(t, math.IsNaN(row.TimeDilationFactor))
	}
}

func TestFallTrajectoryRejectsBadInput(t *testing.T) {
	rs := 29.53

	_, err := FallTrajectory(rs, rs, 10)
	assert.True(t, errors.Is(err, relativity.ErrDomain))

	_, err = FallTrajectory(10*rs, rs, 1)
	assert.True(t, errors.Is(err, relativity.ErrInvalidParameter))

	_, err = FallTrajectory(10*rs, 0, 10)
	assert.True(t, errors.Is(err, relativity.ErrInvalidParameter))
}
