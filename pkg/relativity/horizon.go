package relativity

import (
	"math"

	"cosmossdk.io/errors"
)

const (
	hBar            = 1.054571817e-34 // reduced Planck constant, J·s
	boltzmannK      = 1.380649e-23    // Boltzmann constant, J/K
	standardGravity = 9.81            // m/s²

	// Tidal acceleration treated as lethal for spaghettification
	// estimates, roughly 10g across a human body.
	lethalTidalMS2 = 10 * standardGravity
)

// HorizonProperties collects the derived quantities of an event horizon.
type HorizonProperties struct {
	SchwarzschildRadiusKM float64
	AreaKM2               float64
	CircumferenceKM       float64
	SurfaceGravityMS2     float64
	SurfaceGravityG       float64
	HawkingTemperatureK   float64
}

// EventHorizonProperties computes the geometric and thermodynamic properties
// of the horizon for a black hole of the given mass in solar masses.
func EventHorizonProperties(massSolar float64) (HorizonProperties, error) {
	rsKM, err := SchwarzschildRadius(massSolar)
	if err != nil {
		return HorizonProperties{}, err
	}
	rsM := rsKM * 1000
	massKG := massSolar * SolarMassKG

	areaM2 := 4 * math.Pi * rsM * rsM
	surfaceGravity := C * C * C * C / (4 * G * massKG)

	// Hawking temperature T = ħc³/(8πGMk_B)
	temperature := hBar * C * C * C / (8 * math.Pi * G * massKG * boltzmannK)

	return HorizonProperties{
		SchwarzschildRadiusKM: rsKM,
		AreaKM2:               areaM2 / 1e6,
		CircumferenceKM:       2 * math.Pi * rsKM,
		SurfaceGravityMS2:     surfaceGravity,
		SurfaceGravityG:       surfaceGravity / standardGravity,
		HawkingTemperatureK:   temperature,
	}, nil
}

// TimeToCrossHorizon estimates the coordinate time in seconds for light to
// travel from radius rKM to the horizon. Fails with ErrDomain for r <= rs.
func TimeToCrossHorizon(rKM, rsKM float64) (float64, error) {
	if rsKM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "schwarzschild radius must be positive, got %g", rsKM)
	}
	if rKM <= rsKM {
		return 0, errors.Wrapf(ErrDomain, "r=%g km is at or inside the horizon rs=%g km", rKM, rsKM)
	}
	return (math.Pi / 2) * (rKM * 1000 / C) * math.Sqrt(rKM/rsKM), nil
}

// SafeDistance returns a rule-of-thumb minimum approach distance in km,
// a multiple of the Schwarzschild radius.
func SafeDistance(massSolar, safetyFactor float64) (float64, error) {
	if safetyFactor <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "safety factor must be positive, got %g", safetyFactor)
	}
	rs, err := SchwarzschildRadius(massSolar)
	if err != nil {
		return 0, err
	}
	return rs * safetyFactor, nil
}

// SpaghettificationDistance estimates the radius in km at which tidal forces
// across an object of the given height (meters) reach the lethal threshold.
func SpaghettificationDistance(massSolar, heightM float64) (float64, error) {
	if massSolar <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "mass must be positive, got %g", massSolar)
	}
	if heightM <= 0 {
		return 0, errors.Wrapf(ErrInvalidParameter, "object height must be positive, got %g", heightM)
	}
	massKG := massSolar * SolarMassKG

	// Solve 2GMh/r³ = a_lethal for r.
	rM := math.Cbrt(2 * G * massKG * heightM / lethalTidalMS2)
	return rM / 1000, nil
}
