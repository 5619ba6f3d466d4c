package relativity

import (
	"math"

	"cosmossdk.io/errors"
)

// Physical constants in SI units.
const (
	G           = 6.67430e-11    // gravitational constant, m³/(kg·s²)
	C           = 299792458.0    // speed of light, m/s
	SolarMassKG = 1.98847e30     // one solar mass, kg
)

// SchwarzschildRadius returns the event horizon radius in km for a
// non-rotating black hole of the given mass in solar masses.
func SchwarzschildRadius(massSolar float64) (float64, error) {
	if massSolar <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "mass must be positive, got %g", massSolar)
	}
	massKG := massSolar * SolarMassKG

	// rs = 2GM/c²
	rsM := 2 * G * massKG / (C * C)
	return rsM / 1000, nil
}

// TimeDilation returns the gravitational time dilation factor sqrt(1 - rs/r)
// for a static observer at radius rKM. The factor is in (0, 1): it approaches
// 1 far from the hole and 0 at the horizon. The relation is undefined for
// r <= rs and fails with ErrDomain there.
func TimeDilation(rKM, rsKM float64) (float64, error) {
	if rsKM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "schwarzschild radius must be positive, got %g", rsKM)
	}
	if rKM <= rsKM {
		return 0, errors.Wrapf(ErrDomain, "r=%g km is at or inside the horizon rs=%g km", rKM, rsKM)
	}
	return math.Sqrt(1 - rsKM/rKM), nil
}

// EscapeVelocity returns the Newtonian escape velocity in km/s at radius rKM.
// The result exceeds c for r < rs; guarding against that is the caller's
// responsibility.
func EscapeVelocity(rKM, massSolar float64) (float64, error) {
	if massSolar <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "mass must be positive, got %g", massSolar)
	}
	if rKM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "radius must be positive, got %g", rKM)
	}
	massKG := massSolar * SolarMassKG
	rM := rKM * 1000

	// v = √(2GM/r)
	return math.Sqrt(2*G*massKG/rM) / 1000, nil
}

// OrbitalPeriod returns the Keplerian orbital period in seconds for a
// circular orbit at radius rKM. This is a non-relativistic approximation
// used for visual pacing, not a geodesic solution.
func OrbitalPeriod(rKM, massSolar float64) (float64, error) {
	if massSolar <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "mass must be positive, got %g", massSolar)
	}
	if rKM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "radius must be positive, got %g", rKM)
	}
	massKG := massSolar * SolarMassKG
	rM := rKM * 1000

	// T = 2π√(r³/GM)
	return 2 * math.Pi * math.Sqrt(rM*rM*rM/(G*massKG)), nil
}

// GravitationalRedshift returns the dimensionless redshift z of light emitted
// at radius rKM and observed at infinity. Fails with ErrDomain for r <= rs.
func GravitationalRedshift(rKM, rsKM float64) (float64, error) {
	factor, err := TimeDilation(rKM, rsKM)
	if err != nil {
		return 0, err
	}

	// z = 1/√(1 - rs/r) - 1
	return 1/factor - 1, nil
}

// TidalForce returns the differential acceleration in m/s² across an object
// of the given size (meters) at radius rKM.
func TidalForce(rKM, massSolar, sizeM float64) (float64, error) {
	if massSolar <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "mass must be positive, got %g", massSolar)
	}
	if rKM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "radius must be positive, got %g", rKM)
	}
	if sizeM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "object size must be positive, got %g", sizeM)
	}
	massKG := massSolar * SolarMassKG
	rM := rKM * 1000

	// ΔF ≈ 2GMh/r³
	return 2 * G * massKG * sizeM / (rM * rM * rM), nil
}

// PhotonSphereRadius returns the radius in km at which light can orbit,
// 1.5 times the Schwarzschild radius.
func PhotonSphereRadius(massSolar float64) (float64, error) {
	rs, err := SchwarzschildRadius(massSolar)
	if err != nil {
		return 0, err
	}
	return 1.5 * rs, nil
}

// InnermostStableOrbit returns the ISCO radius in km for massive test
// particles, 3 times the Schwarzschild radius.
func InnermostStableOrbit(massSolar float64) (float64, error) {
	rs, err := SchwarzschildRadius(massSolar)
	if err != nil {
		return 0, err
	}
	return 3 * rs, nil
}
