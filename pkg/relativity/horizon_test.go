package relativity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHorizonScaling checks the mass dependence of the derived horizon
// quantities: area grows as M², Hawking temperature falls as 1/M.
func TestHorizonScaling(t *testing.T) {
	p10, err := EventHorizonProperties(10)
	require.NoError(t, err)
	p100, err := EventHorizonProperties(100)
	require.NoError(t, err)

	assert.InEpsilon(t, 100.0, p100.AreaKM2/p10.AreaKM2, 1e-9)
	assert.InEpsilon(t, 10.0, p10.HawkingTemperatureK/p100.HawkingTemperatureK, 1e-9)
	assert.InEpsilon(t, 10.0, p10.SurfaceGravityMS2/p100.SurfaceGravityMS2, 1e-9)
	assert.InEpsilon(t, 10.0, p100.CircumferenceKM/p10.CircumferenceKM, 1e-9)
}

func TestEventHorizonPropertiesRejectsBadMass(t *testing.T) {
	_, err := EventHorizonProperties(-5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestTimeToCrossHorizon(t *testing.T) {
	rs := 29.53

	dt, err := TimeToCrossHorizon(10*rs, rs)
	require.NoError(t, err)
	assert.Greater(t, dt, 0.0)

	// Farther starting points take longer.
	dtFar, err := TimeToCrossHorizon(100*rs, rs)
	require.NoError(t, err)
	assert.Greater(t, dtFar, dt)

	_, err = TimeToCrossHorizon(rs, rs)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestSafeDistance(t *testing.T) {
	rs, err := SchwarzschildRadius(10)
	require.NoError(t, err)

	d, err := SafeDistance(10, 10)
	require.NoError(t, err)
	assert.InEpsilon(t, 10*rs, d, 1e-12)

	_, err = SafeDistance(10, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

// TestSpaghettificationDistance verifies the cube-root mass scaling and that
// for stellar-mass holes the lethal radius lies well outside the horizon.
func TestSpaghettificationDistance(t *testing.T) {
	d10, err := SpaghettificationDistance(10, 2.0)
	require.NoError(t, err)
	d80, err := SpaghettificationDistance(80, 2.0)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.0, d80/d10, 1e-9)

	rs, err := SchwarzschildRadius(10)
	require.NoError(t, err)
	assert.Greater(t, d10, rs)

	_, err = SpaghettificationDistance(10, -1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
