package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"

	"cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/astrolabs/schwarzsim/internal/types"
	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// Sampling window for the dilation curve in multiples of rs. The inner edge
// sits just outside the horizon so every sample is in the formula's domain;
// the outer edge is where the factor is already close to 1.
const (
	profileInnerFactor = 1.01
	profileOuterFactor = 10.0
)

// DilationProfile samples the time dilation curve around a black hole of the
// given mass and summarizes it. Samples are spaced linearly in radius
// between profileInnerFactor·rs and profileOuterFactor·rs.
func DilationProfile(massSolar float64, samples int) (types.ProfileSummary, []types.DilationRow, error) {
	if samples < 2 {
		return types.ProfileSummary{}, nil, errors.Wrapf(relativity.ErrInvalidParameter, "need at least 2 samples, got %d", samples)
	}
	rs, err := relativity.SchwarzschildRadius(massSolar)
	if err != nil {
		return types.ProfileSummary{}, nil, err
	}
	photon, err := relativity.PhotonSphereRadius(massSolar)
	if err != nil {
		return types.ProfileSummary{}, nil, err
	}
	isco, err := relativity.InnermostStableOrbit(massSolar)
	if err != nil {
		return types.ProfileSummary{}, nil, err
	}

	log.Printf("Sampling dilation profile: mass=%g M_sun, rs=%.2f km, %d samples", massSolar, rs, samples)

	radii := make([]float64, samples)
	floats.Span(radii, profileInnerFactor*rs, profileOuterFactor*rs)

	factors := make([]float64, samples)
	rows := make([]types.DilationRow, samples)
	for i, r := range radii {
		factor, err := relativity.TimeDilation(r, rs)
		if err != nil {
			return types.ProfileSummary{}, nil, err
		}
		factors[i] = factor
		rows[i] = types.DilationRow{
			RadiusKM: r,
			RadiusRS: r / rs,
			Factor:   factor,
			Slowdown: 1 / factor,
		}
	}

	summary := types.ProfileSummary{
		MassSolar:             massSolar,
		SchwarzschildRadiusKM: rs,
		PhotonSphereKM:        photon,
		IscoKM:                isco,
		Samples:               samples,
		MeanFactor:            stat.Mean(factors, nil),
		StdDevFactor:          stat.StdDev(factors, nil),
		MinFactor:             floats.Min(factors),
		MaxFactor:             floats.Max(factors),
	}
	return summary, rows, nil
}

// WriteProfileCSV writes the sampled curve as CSV with a header row.
func WriteProfileCSV(w io.Writer, rows []types.DilationRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"radius_km", "radius_rs", "time_dilation", "slowdown"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatFloat(row.RadiusKM, 'g', -1, 64),
			strconv.FormatFloat(row.RadiusRS, 'g', -1, 64),
			strconv.FormatFloat(row.Factor, 'g', -1, 64),
			strconv.FormatFloat(row.Slowdown, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CompareTimePassages reports how a span of observer time at infinity maps
// to local time at radius rKM.
func CompareTimePassages(rKM, rsKM, observerHours float64) (types.TimeComparison, error) {
	factor, err := relativity.TimeDilation(rKM, rsKM)
	if err != nil {
		return types.TimeComparison{}, err
	}
	localHours := observerHours * factor
	return types.TimeComparison{
		DistanceKM:         rKM,
		DistanceRS:         rKM / rsKM,
		TimeDilationFactor: factor,
		ObserverTimeHours:  observerHours,
		LocalTimeHours:     localHours,
		TimeRatio:          1 / factor,
		ObserverFormatted:  relativity.FormatTime(observerHours * 3600),
		LocalFormatted:     relativity.FormatTime(localHours * 3600),
	}, nil
}
