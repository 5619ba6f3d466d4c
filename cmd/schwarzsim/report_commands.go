package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrolabs/schwarzsim/internal/types"
	"github.com/astrolabs/schwarzsim/pkg/analysis"
	"github.com/astrolabs/schwarzsim/pkg/orbits"
	"github.com/astrolabs/schwarzsim/pkg/relativity"
	"github.com/astrolabs/schwarzsim/pkg/simulation"
	"github.com/astrolabs/schwarzsim/pkg/utils"
)

// massFromFlagOrConfig resolves the working mass: an explicit --mass wins,
// otherwise the config file value, otherwise the flag default. The flag
// default applies only when no config file exists; an existing but broken
// file is an error the user has to see, not one to paper over.
func massFromFlagOrConfig(cmd *cobra.Command, flagMass float64) (float64, error) {
	if cmd.Flags().Changed("mass") {
		return flagMass, nil
	}
	record, err := utils.LoadConfig(homeDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return flagMass, nil
		}
		return 0, err
	}
	return record.Mass, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

var infoMass float64

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show event horizon properties for a black hole mass",
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, err := massFromFlagOrConfig(cmd, infoMass)
		if err != nil {
			return err
		}

		props, err := relativity.EventHorizonProperties(mass)
		if err != nil {
			return err
		}
		photon, err := relativity.PhotonSphereRadius(mass)
		if err != nil {
			return err
		}
		isco, err := relativity.InnermostStableOrbit(mass)
		if err != nil {
			return err
		}

		report := types.HorizonReport{
			MassSolar:             mass,
			SchwarzschildRadiusKM: props.SchwarzschildRadiusKM,
			PhotonSphereKM:        photon,
			IscoKM:                isco,
			AreaKM2:               props.AreaKM2,
			CircumferenceKM:       props.CircumferenceKM,
			SurfaceGravityMS2:     props.SurfaceGravityMS2,
			SurfaceGravityG:       props.SurfaceGravityG,
			HawkingTemperatureK:   props.HawkingTemperatureK,
		}
		if jsonOutput {
			return printJSON(report)
		}

		fmt.Printf("Black hole of %g solar masses\n", mass)
		fmt.Printf("  Schwarzschild radius:  %s\n", relativity.FormatDistance(report.SchwarzschildRadiusKM))
		fmt.Printf("  Photon sphere:         %s (%.1f Rs)\n", relativity.FormatDistance(photon), photon/report.SchwarzschildRadiusKM)
		fmt.Printf("  Innermost stable orbit: %s (%.1f Rs)\n", relativity.FormatDistance(isco), isco/report.SchwarzschildRadiusKM)
		fmt.Printf("  Horizon area:          %.3e km²\n", report.AreaKM2)
		fmt.Printf("  Horizon circumference: %s\n", relativity.FormatDistance(report.CircumferenceKM))
		fmt.Printf("  Surface gravity:       %.3e m/s² (%.1f g)\n", report.SurfaceGravityMS2, report.SurfaceGravityG)
		fmt.Printf("  Hawking temperature:   %.2e K\n", report.HawkingTemperatureK)

		spaghetti, err := relativity.SpaghettificationDistance(mass, 2.0)
		if err != nil {
			return err
		}
		fmt.Printf("  Spaghettification (2 m object): %s\n", relativity.FormatDistance(spaghetti))
		return nil
	},
}

var dilationMass float64

var dilationCmd = &cobra.Command{
	Use:   "dilation",
	Short: "Tabulate time dilation at characteristic distances",
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, err := massFromFlagOrConfig(cmd, dilationMass)
		if err != nil {
			return err
		}
		rs, err := relativity.SchwarzschildRadius(mass)
		if err != nil {
			return err
		}

		distancesRS := []float64{1.001, 1.1, 1.5, 2, 3, 5, 10, 100}

		if jsonOutput {
			rows := make([]types.DilationRow, 0, len(distancesRS))
			for _, dRS := range distancesRS {
				factor, err := relativity.TimeDilation(dRS*rs, rs)
				if err != nil {
					return err
				}
				rows = append(rows, types.DilationRow{
					RadiusKM: dRS * rs,
					RadiusRS: dRS,
					Factor:   factor,
					Slowdown: 1 / factor,
				})
			}
			return printJSON(rows)
		}

		fmt.Printf("Black hole of %g solar masses (Rs = %s)\n\n", mass, relativity.FormatDistance(rs))
		fmt.Printf("%-12s %-14s %-22s %-22s\n", "Distance", "Dilation", "1 hour at infinity", "1 year at infinity")
		fmt.Println("----------------------------------------------------------------------")
		for _, dRS := range distancesRS {
			factor, err := relativity.TimeDilation(dRS*rs, rs)
			if err != nil {
				return err
			}
			hourLocal := relativity.FormatTime(factor * 3600)
			yearLocal := relativity.FormatTime(factor * 365.25 * 24 * 3600)
			fmt.Printf("%-12s %-14.6f %-22s %-22s\n", fmt.Sprintf("%.3f Rs", dRS), factor, hourLocal, yearLocal)
		}
		return nil
	},
}

var (
	orbitsMass  float64
	orbitsCount int
)

var orbitsCmd = &cobra.Command{
	Use:   "orbits",
	Short: "Tabulate circular orbits between the photon sphere and 5 Rs",
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, err := massFromFlagOrConfig(cmd, orbitsMass)
		if err != nil {
			return err
		}

		rows, err := orbits.Table(mass, orbitsCount)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(rows)
		}

		fmt.Printf("Orbits around a black hole of %g solar masses\n\n", mass)
		fmt.Printf("%-10s %-22s %-14s %-12s %-22s\n", "Radius", "Period", "Velocity", "Dilation", "Perceived period")
		fmt.Println("------------------------------------------------------------------------------------")
		for _, row := range rows {
			fmt.Printf("%-10s %-22s %-14s %-12.4f %-22s\n",
				fmt.Sprintf("%.1f Rs", row.RadiusRS),
				relativity.FormatTime(row.OrbitalPeriodS),
				fmt.Sprintf("%.3f c", row.OrbitalVelocityC),
				row.TimeDilationFactor,
				relativity.FormatTime(row.PerceivedPeriodS),
			)
		}
		return nil
	},
}

var (
	fallMass   float64
	fallFromRS float64
	fallPoints int
)

var fallCmd = &cobra.Command{
	Use:   "fall",
	Short: "Sample a radial fall toward the horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, err := massFromFlagOrConfig(cmd, fallMass)
		if err != nil {
			return err
		}
		rs, err := relativity.SchwarzschildRadius(mass)
		if err != nil {
			return err
		}

		rows, err := orbits.FallTrajectory(fallFromRS*rs, rs, fallPoints)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(rows)
		}

		fmt.Printf("Falling from %.1f Rs into a black hole of %g solar masses\n\n", fallFromRS, mass)
		fmt.Printf("%-8s %-12s %-14s %-12s\n", "Step", "Distance", "Dilation", "Velocity")
		fmt.Println("---------------------------------------------------")
		for _, row := range rows {
			fmt.Printf("%-8d %-12s %-14.6f %-12s\n",
				row.Step,
				fmt.Sprintf("%.2f Rs", row.RadiusRS),
				row.TimeDilationFactor,
				fmt.Sprintf("%.3f c", row.FallVelocityC),
			)
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare known black holes",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := simulation.Presets()

		if jsonOutput {
			reports := make([]types.HorizonReport, 0, len(presets))
			for _, p := range presets {
				props, err := relativity.EventHorizonProperties(p.MassSolar)
				if err != nil {
					return err
				}
				photon, err := relativity.PhotonSphereRadius(p.MassSolar)
				if err != nil {
					return err
				}
				isco, err := relativity.InnermostStableOrbit(p.MassSolar)
				if err != nil {
					return err
				}
				reports = append(reports, types.HorizonReport{
					MassSolar:             p.MassSolar,
					SchwarzschildRadiusKM: props.SchwarzschildRadiusKM,
					PhotonSphereKM:        photon,
					IscoKM:                isco,
					AreaKM2:               props.AreaKM2,
					CircumferenceKM:       props.CircumferenceKM,
					SurfaceGravityMS2:     props.SurfaceGravityMS2,
					SurfaceGravityG:       props.SurfaceGravityG,
					HawkingTemperatureK:   props.HawkingTemperatureK,
				})
			}
			return printJSON(reports)
		}

		fmt.Printf("%-30s %-14s %-20s %-20s\n", "Name", "Mass (M_sun)", "Rs", "Photon sphere")
		fmt.Println("-------------------------------------------------------------------------------------")
		for _, p := range presets {
			rs, err := relativity.SchwarzschildRadius(p.MassSolar)
			if err != nil {
				return err
			}
			photon, err := relativity.PhotonSphereRadius(p.MassSolar)
			if err != nil {
				return err
			}
			massStr := fmt.Sprintf("%.0f", p.MassSolar)
			if p.MassSolar >= 1e6 {
				massStr = fmt.Sprintf("%.1e", p.MassSolar)
			}
			fmt.Printf("%-30s %-14s %-20s %-20s\n", p.DisplayName, massStr,
				relativity.FormatDistance(rs), relativity.FormatDistance(photon))
		}
		return nil
	},
}

var (
	profileMass    float64
	profileSamples int
	profileCSVPath string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Sample and summarize the dilation curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, err := massFromFlagOrConfig(cmd, profileMass)
		if err != nil {
			return err
		}

		summary, rows, err := analysis.DilationProfile(mass, profileSamples)
		if err != nil {
			return err
		}

		if profileCSVPath != "" {
			f, err := os.Create(profileCSVPath)
			if err != nil {
				return fmt.Errorf("failed to create CSV file: %w", err)
			}
			defer f.Close()
			if err := analysis.WriteProfileCSV(f, rows); err != nil {
				return err
			}
			fmt.Printf("Wrote %d samples to %s\n", len(rows), profileCSVPath)
		}

		if jsonOutput {
			return printJSON(summary)
		}

		fmt.Printf("Dilation profile for %g solar masses (%d samples, %.2f-%.2f Rs)\n",
			mass, summary.Samples, rows[0].RadiusRS, rows[len(rows)-1].RadiusRS)
		fmt.Printf("  Rs:            %s\n", relativity.FormatDistance(summary.SchwarzschildRadiusKM))
		fmt.Printf("  Photon sphere: %s\n", relativity.FormatDistance(summary.PhotonSphereKM))
		fmt.Printf("  ISCO:          %s\n", relativity.FormatDistance(summary.IscoKM))
		fmt.Printf("  Factor mean:   %.4f ± %.4f\n", summary.MeanFactor, summary.StdDevFactor)
		fmt.Printf("  Factor range:  [%.4f, %.4f]\n", summary.MinFactor, summary.MaxFactor)
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List named black hole presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := simulation.Presets()
		if jsonOutput {
			return printJSON(presets)
		}
		fmt.Printf("%-18s %-30s %-14s\n", "Preset", "Name", "Mass (M_sun)")
		fmt.Println("---------------------------------------------------------------")
		for _, p := range presets {
			fmt.Printf("%-18s %-30s %-14g\n", p.Preset, p.DisplayName, p.MassSolar)
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().Float64Var(&infoMass, "mass", 10, "black hole mass in solar masses")
	dilationCmd.Flags().Float64Var(&dilationMass, "mass", 10, "black hole mass in solar masses")
	orbitsCmd.Flags().Float64Var(&orbitsMass, "mass", 10, "black hole mass in solar masses")
	orbitsCmd.Flags().IntVar(&orbitsCount, "count", 6, "number of orbits")
	fallCmd.Flags().Float64Var(&fallMass, "mass", 10, "black hole mass in solar masses")
	fallCmd.Flags().Float64Var(&fallFromRS, "from", 10, "starting distance in Schwarzschild radii")
	fallCmd.Flags().IntVar(&fallPoints, "points", 8, "number of trajectory samples")
	profileCmd.Flags().Float64Var(&profileMass, "mass", 10, "black hole mass in solar masses")
	profileCmd.Flags().IntVar(&profileSamples, "samples", 100, "number of curve samples")
	profileCmd.Flags().StringVar(&profileCSVPath, "csv", "", "write samples to a CSV file")
}
