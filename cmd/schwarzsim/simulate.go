package main

import (
	stderrors "errors"
	"fmt"
	"math"
	"os"

	"cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"github.com/astrolabs/schwarzsim/pkg/relativity"
	"github.com/astrolabs/schwarzsim/pkg/simulation"
	"github.com/astrolabs/schwarzsim/pkg/utils"
)

var (
	simMass     float64
	simOrbits   int
	simSpeed    float64
	simPreset   string
	simDuration float64
	simDT       float64
	simSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the orbit animation loop and print state snapshots",
	Long: `Run the tick-driven simulation for a fixed duration. Each orbit's
phase advances at a rate scaled by its local time-dilation factor, so inner
particles visibly lag outer ones. Snapshots are printed once per simulated
second.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if simDT <= 0 {
			return errors.Wrapf(relativity.ErrInvalidParameter, "tick interval must be positive, got %g", simDT)
		}

		record, err := utils.LoadConfig(homeDir)
		if err != nil {
			if !stderrors.Is(err, os.ErrNotExist) {
				return err
			}
			// Fresh installation, nothing saved yet.
			record = utils.DefaultRecord()
		}
		if cmd.Flags().Changed("mass") {
			record.Mass = simMass
		}
		if cmd.Flags().Changed("orbits") {
			record.OrbitCount = simOrbits
		}
		if cmd.Flags().Changed("speed") {
			record.AnimationSpeed = simSpeed
		}

		state, err := simulation.NewStateFromRecord(record)
		if err != nil {
			return err
		}

		if simPreset != "" {
			if err := state.Apply(simulation.ApplyPreset{Preset: simulation.Preset(simPreset)}); err != nil {
				return err
			}
		}

		bh := state.BlackHole()
		fmt.Printf("Simulating %d orbits around %g solar masses (Rs = %.2f km), speed %gx\n\n",
			len(state.Orbits()), bh.MassSolar, bh.SchwarzschildRadiusKM, state.AnimationSpeed())

		steps := int(simDuration / simDT)
		printEvery := int(math.Max(1, 1.0/simDT))
		for step := 1; step <= steps; step++ {
			if err := state.Apply(simulation.Tick{DT: simDT}); err != nil {
				return err
			}
			if step%printEvery == 0 {
				printSnapshot(state)
			}
		}

		if simSave {
			if err := utils.SaveConfig(homeDir, simulation.Snapshot(state)); err != nil {
				return err
			}
			fmt.Printf("\nSaved parameters to %s\n", homeDir)
		}
		return nil
	},
}

func printSnapshot(state *simulation.State) {
	fmt.Printf("t=%6.2fs ", state.Clock())
	for _, o := range state.Orbits() {
		fmt.Printf(" [r=%.0fkm φ=%5.1f° %s]", o.RadiusKM, o.PhaseAngle*180/math.Pi, o.Band)
	}
	fmt.Println()
}

func init() {
	simulateCmd.Flags().Float64Var(&simMass, "mass", 10, "black hole mass in solar masses")
	simulateCmd.Flags().IntVar(&simOrbits, "orbits", 4, "number of orbits")
	simulateCmd.Flags().Float64Var(&simSpeed, "speed", 1.0, "animation speed multiplier")
	simulateCmd.Flags().StringVar(&simPreset, "preset", "", "apply a named mass preset (see presets command)")
	simulateCmd.Flags().Float64Var(&simDuration, "duration", 10, "simulated duration in seconds")
	simulateCmd.Flags().Float64Var(&simDT, "dt", 0.016, "tick interval in seconds")
	simulateCmd.Flags().BoolVar(&simSave, "save", false, "persist the final parameters to the config file")
}
