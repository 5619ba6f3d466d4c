package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabs/schwarzsim/pkg/relativity"
	"github.com/astrolabs/schwarzsim/pkg/simulation"
)

func useHome(t *testing.T, dir string) {
	t.Helper()
	old := homeDir
	homeDir = dir
	t.Cleanup(func() { homeDir = old })
}

func writeHomeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func newMassCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Float64("mass", 10, "")
	return cmd
}

func TestMassResolutionMalformedConfigSurfaced(t *testing.T) {
	dir := t.TempDir()
	writeHomeConfig(t, dir, "mass: not-a-number\norbit_count: 4\nanimation_speed: 1\n")
	useHome(t, dir)

	_, err := massFromFlagOrConfig(newMassCommand(), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))
}

func TestMassResolutionMissingConfigUsesFlagDefault(t *testing.T) {
	useHome(t, t.TempDir())

	mass, err := massFromFlagOrConfig(newMassCommand(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, mass)
}

func TestMassResolutionConfigValueUsed(t *testing.T) {
	dir := t.TempDir()
	writeHomeConfig(t, dir, "mass: 36\norbit_count: 4\nanimation_speed: 1\n")
	useHome(t, dir)

	mass, err := massFromFlagOrConfig(newMassCommand(), 10)
	require.NoError(t, err)
	assert.Equal(t, 36.0, mass)
}

func TestMassResolutionExplicitFlagWins(t *testing.T) {
	dir := t.TempDir()
	writeHomeConfig(t, dir, "mass: not-a-number\norbit_count: 4\nanimation_speed: 1\n")
	useHome(t, dir)

	cmd := newMassCommand()
	require.NoError(t, cmd.Flags().Set("mass", "21"))

	mass, err := massFromFlagOrConfig(cmd, 21)
	require.NoError(t, err)
	assert.Equal(t, 21.0, mass)
}

func TestSimulateRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	writeHomeConfig(t, dir, "mass: not-a-number\norbit_count: 4\nanimation_speed: 1\n")
	useHome(t, dir)

	err := simulateCmd.RunE(simulateCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))
}

func TestSimulateRejectsNonPositiveTick(t *testing.T) {
	useHome(t, t.TempDir())

	old := simDT
	simDT = 0
	t.Cleanup(func() { simDT = old })

	err := simulateCmd.RunE(simulateCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, relativity.ErrInvalidParameter))
}
