package types

// HorizonReport is the JSON-facing record for event horizon properties.
type HorizonReport struct {
	MassSolar             float64 `json:"mass_solar"`
	SchwarzschildRadiusKM float64 `json:"schwarzschild_radius_km"`
	PhotonSphereKM        float64 `json:"photon_sphere_km"`
	IscoKM                float64 `json:"isco_km"`
	AreaKM2               float64 `json:"horizon_area_km2"`
	CircumferenceKM       float64 `json:"horizon_circumference_km"`
	SurfaceGravityMS2     float64 `json:"surface_gravity_ms2"`
	SurfaceGravityG       float64 `json:"surface_gravity_g"`
	HawkingTemperatureK   float64 `json:"hawking_temperature_k"`
}

// OrbitRow describes one circular orbit for tabular output.
type OrbitRow struct {
	RadiusKM           float64 `json:"radius_km"`
	RadiusRS           float64 `json:"radius_rs"`
	TimeDilationFactor float64 `json:"time_dilation"`
	OrbitalVelocityMS  float64 `json:"orbital_velocity_ms"`
	OrbitalVelocityC   float64 `json:"orbital_velocity_c"`
	OrbitalPeriodS     float64 `json:"orbital_period_s"`
	PerceivedPeriodS   float64 `json:"perceived_period_s"`
}

// FallRow is one sample of a radial in-fall trajectory.
type FallRow struct {
	Step               int     `json:"step"`
	RadiusKM           float64 `json:"radius_km"`
	RadiusRS           float64 `json:"radius_rs"`
	TimeDilationFactor float64 `json:"time_dilation"`
	FallVelocityMS     float64 `json:"fall_velocity_ms"`
	FallVelocityC      float64 `json:"fall_velocity_c"`
}

// DilationRow is one sample of the dilation curve over radius.
type DilationRow struct {
	RadiusKM float64 `json:"radius_km"`
	RadiusRS float64 `json:"radius_rs"`
	Factor   float64 `json:"time_dilation"`
	Slowdown float64 `json:"slowdown"` // 1/factor, how much slower local clocks run
}

// ProfileSummary aggregates a sampled dilation curve.
type ProfileSummary struct {
	MassSolar             float64 `json:"mass_solar"`
	SchwarzschildRadiusKM float64 `json:"schwarzschild_radius_km"`
	PhotonSphereKM        float64 `json:"photon_sphere_km"`
	IscoKM                float64 `json:"isco_km"`
	Samples               int     `json:"samples"`
	MeanFactor            float64 `json:"mean_factor"`
	StdDevFactor          float64 `json:"stddev_factor"`
	MinFactor             float64 `json:"min_factor"`
	MaxFactor             float64 `json:"max_factor"`
}

// TimeComparison reports how observer time maps to local time at a radius.
type TimeComparison struct {
	DistanceKM         float64 `json:"distance_km"`
	DistanceRS         float64 `json:"distance_rs"`
	TimeDilationFactor float64 `json:"time_dilation_factor"`
	ObserverTimeHours  float64 `json:"observer_time_hours"`
	LocalTimeHours     float64 `json:"local_time_hours"`
	TimeRatio          float64 `json:"time_ratio"`
	ObserverFormatted  string  `json:"observer_time_formatted"`
	LocalFormatted     string  `json:"local_time_formatted"`
}
