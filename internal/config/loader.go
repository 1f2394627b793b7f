package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path on top of Default and validates it.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Decode(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses YAML bytes on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(b []byte) (Config, error) {
	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg, err := apply(Default(), dto)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func apply(cfg Config, dto YAMLConfig) (Config, error) {
	if dto.Home != nil {
		cfg.Home = *dto.Home
	}
	if dto.ExactDominance != nil {
		cfg.ExactDominance = *dto.ExactDominance
	}
	if dto.Bound != nil {
		b, err := ParseBound(*dto.Bound)
		if err != nil {
			return Config{}, err
		}
		cfg.Bound = b
	}
	if dto.TimeLimit != nil {
		d, err := time.ParseDuration(*dto.TimeLimit)
		if err != nil {
			return Config{}, fmt.Errorf("%w: time_limit: %w", ErrInvalidConfig, err)
		}
		cfg.TimeLimit = d
	}
	if dto.Workers != nil {
		cfg.Workers = *dto.Workers
	}
	if dto.DotDir != nil {
		cfg.DotDir = *dto.DotDir
	}
	if dto.CachePath != nil {
		cfg.CachePath = *dto.CachePath
	}
	if dto.LogFile != nil {
		cfg.LogFile = *dto.LogFile
	}
	if dto.Debug != nil {
		cfg.Debug = *dto.Debug
	}

	return cfg, nil
}
