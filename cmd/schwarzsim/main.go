package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrolabs/schwarzsim/pkg/utils"
)

const (
	appName = "schwarzsim"
	version = "v1.0.0"
)

var (
	homeDir    string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Schwarzschild black hole time-dilation simulator",
	Long: `schwarzsim computes gravitational time-dilation effects near a
non-rotating (Schwarzschild) black hole and animates test particles whose
orbital speeds are modulated by the local dilation factor.

The physics core exposes pure formulas (Schwarzschild radius, time dilation,
escape velocity, redshift, tidal forces) and a tick-driven simulation state.
The subcommands print reports over that core; the simulate command runs the
animation loop in text form.`,
	Version: version,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Create the configuration directory and a config file with default
simulation parameters. An existing config file is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := utils.InitConfig(homeDir)
		if err != nil {
			return err
		}
		fmt.Printf("Configuration ready in %s\n", homeDir)
		fmt.Printf("  mass:            %g solar masses\n", record.Mass)
		fmt.Printf("  orbit_count:     %d\n", record.OrbitCount)
		fmt.Printf("  animation_speed: %gx\n", record.AnimationSpeed)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", utils.DefaultConfigDir(), "directory for the config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of tables")

	rootCmd.AddCommand(
		initCmd,
		infoCmd,
		dilationCmd,
		orbitsCmd,
		fallCmd,
		compareCmd,
		profileCmd,
		presetsCmd,
		simulateCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
