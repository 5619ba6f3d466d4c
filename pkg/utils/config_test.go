package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolabs/schwarzsim/pkg/simulation"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mass: 21\norbit_count: 6\nanimation_speed: 2.5\n")

	record, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, simulation.Record{Mass: 21, OrbitCount: 6, AnimationSpeed: 2.5}, record)
}

func TestLoadConfigMissingKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mass: 21\norbit_count: 6\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))
	assert.Contains(t, err.Error(), "animation_speed")
}

func TestLoadConfigMalformedValue(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mass: not-a-number\norbit_count: 6\nanimation_speed: 1\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))
}

func TestLoadConfigOutOfDomainValue(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mass: -5\norbit_count: 6\nanimation_speed: 1\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))
}

func TestLoadConfigNoFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, simulation.ErrConfig))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	record := simulation.Record{Mass: 36, OrbitCount: 8, AnimationSpeed: 0.5}

	require.NoError(t, SaveConfig(dir, record))
	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestSaveConfigRejectsInvalidRecord(t *testing.T) {
	err := SaveConfig(t.TempDir(), simulation.Record{Mass: 0, OrbitCount: 1, AnimationSpeed: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))
}

func TestInitConfigBootstrapsDefaults(t *testing.T) {
	dir := t.TempDir()

	record, err := InitConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultRecord(), record)

	// The file now exists and loads back.
	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

// TestInitConfigKeepsMalformedFile: init must surface the error from an
// existing broken config instead of overwriting it with defaults.
func TestInitConfigKeepsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mass: -5\norbit_count: 6\nanimation_speed: 1\n")

	_, err := InitConfig(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrConfig))

	data, readErr := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "mass: -5")
}
