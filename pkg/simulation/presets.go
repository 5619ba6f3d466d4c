package simulation

import (
	"cosmossdk.io/errors"

	"github.com/astrolabs/schwarzsim/pkg/relativity"
)

// Preset names a published or canonical black hole mass. Presets are sugar
// over SetMass; they carry no extra state.
type Preset string

const (
	PresetMinimumStellar Preset = "minimum_stellar"
	PresetCygnusX1       Preset = "cygnus_x1"
	PresetGW150914       Preset = "gw150914"
	PresetIntermediate   Preset = "intermediate"
	PresetSagittariusA   Preset = "sagittarius_a"
	PresetM87            Preset = "m87"
)

// PresetInfo describes one preset for listing and comparison output.
type PresetInfo struct {
	Preset      Preset  `json:"preset"`
	DisplayName string  `json:"display_name"`
	MassSolar   float64 `json:"mass_solar"`
}

// Presets returns the preset table in ascending mass order.
func Presets() []PresetInfo {
	return []PresetInfo{
		{PresetMinimumStellar, "Minimum stellar black hole", 3},
		{PresetCygnusX1, "Cygnus X-1", 21},
		{PresetGW150914, "GW150914 merger remnant", 36},
		{PresetIntermediate, "Intermediate-mass black hole", 100},
		{PresetSagittariusA, "Sagittarius A*", 4.3e6},
		{PresetM87, "M87*", 6.5e9},
	}
}

// PresetMass returns the mass in solar masses for a known preset.
func PresetMass(p Preset) (float64, error) {
	for _, info := range Presets() {
		if info.Preset == p {
			return info.MassSolar, nil
		}
	}
	return 0, errors.Wrapf(relativity.ErrInvalidParameter, "unknown preset %q", p)
}
