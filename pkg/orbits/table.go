package orbits

import (
	"math"

	"github.com/astrolabs/schwarzsim/internal/types"
	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// Table derives the physical report rows for count orbits around a black
// hole of the given mass, on the same radius grid as Generate. The perceived
// period is the orbital period as seen from infinity, stretched by the
// inverse dilation factor.
func Table(massSolar float64, count int) ([]types.OrbitRow, error) {
	descs, err := Generate(massSolar, count)
	if err != nil {
		return nil, err
	}
	rs, err := relativity.SchwarzschildRadius(massSolar)
	if err != nil {
		return nil, err
	}

	massKG := massSolar * relativity.SolarMassKG
	rows := make([]types.OrbitRow, len(descs))
	for i, d := range descs {
		rM := d.RadiusKM * 1000
		vOrbital := math.Sqrt(relativity.G * massKG / rM) // m/s, circular orbit

		rows[i] = types.OrbitRow{
			RadiusKM:           d.RadiusKM,
			RadiusRS:           d.RadiusKM / rs,
			TimeDilationFactor: d.TimeDilationFactor,
			OrbitalVelocityMS:  vOrbital,
			OrbitalVelocityC:   vOrbital / relativity.C,
			OrbitalPeriodS:     d.OrbitalPeriodS,
			PerceivedPeriodS:   d.OrbitalPeriodS / d.TimeDilationFactor,
		}
	}
	return rows, nil
}
