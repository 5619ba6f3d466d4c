package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/astrolabs/schwarzsim/pkg/simulation"
)

const (
	configDirName  = ".schwarzsim"
	configFileName = "config"
	configFileType = "yaml"
)

// Required keys of the flat configuration record. A file missing any of
// them is malformed; required numeric fields are never silently defaulted.
var requiredKeys = []string{"mass", "orbit_count", "animation_speed"}

// DefaultRecord returns the parameters a fresh installation starts with.
// Used only when bootstrapping a config file, never to paper over a
// malformed one.
func DefaultRecord() simulation.Record {
	return simulation.Record{
		Mass:           10,
		OrbitCount:     4,
		AnimationSpeed: 1.0,
	}
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, configDirName)
}

// LoadConfig reads the simulation record from the config file in dir.
// Missing or unparsable required keys fail with simulation.ErrConfig so the
// host can surface them and keep its in-memory state. A dir with no config
// file at all fails with an error wrapping os.ErrNotExist instead, so hosts
// can fall back to defaults on a fresh installation without swallowing
// errors from an existing but broken file.
func LoadConfig(dir string) (simulation.Record, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SCHWARZSIM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return simulation.Record{}, fmt.Errorf("no config file in %s (run init first): %w", dir, os.ErrNotExist)
		}
		return simulation.Record{}, errors.Wrapf(simulation.ErrConfig, "error reading config file: %v", err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return simulation.Record{}, errors.Wrapf(simulation.ErrConfig, "missing required key %q", key)
		}
	}

	mass, err := cast.ToFloat64E(v.Get("mass"))
	if err != nil {
		return simulation.Record{}, errors.Wrapf(simulation.ErrConfig, "key \"mass\": %v", err)
	}
	orbitCount, err := cast.ToIntE(v.Get("orbit_count"))
	if err != nil {
		return simulation.Record{}, errors.Wrapf(simulation.ErrConfig, "key \"orbit_count\": %v", err)
	}
	speed, err := cast.ToFloat64E(v.Get("animation_speed"))
	if err != nil {
		return simulation.Record{}, errors.Wrapf(simulation.ErrConfig, "key \"animation_speed\": %v", err)
	}

	record := simulation.Record{
		Mass:           mass,
		OrbitCount:     orbitCount,
		AnimationSpeed: speed,
	}
	if err := record.Validate(); err != nil {
		return simulation.Record{}, err
	}
	return record, nil
}

// SaveConfig writes the record as the config file in dir, creating the
// directory if needed.
func SaveConfig(dir string, record simulation.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configFile := filepath.Join(dir, configFileName+"."+configFileType)
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitConfig bootstraps dir with the default record if no config exists yet.
// An existing file is left alone, even a malformed one: its errors must
// reach the user instead of being overwritten with defaults.
func InitConfig(dir string) (simulation.Record, error) {
	configFile := filepath.Join(dir, configFileName+"."+configFileType)
	if _, err := os.Stat(configFile); err == nil {
		return LoadConfig(dir)
	}
	record := DefaultRecord()
	if err := SaveConfig(dir, record); err != nil {
		return simulation.Record{}, err
	}
	return record, nil
}
