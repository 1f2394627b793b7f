package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/freeride/search"
	"github.com/katalvlaran/freeride/ticket"
)

// ErrInvalidConfig classifies every configuration problem.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the resolved solver configuration.
type Config struct {
	Home           string
	ExactDominance bool
	Bound          search.BoundAlgo
	TimeLimit      time.Duration // per case; 0 = unlimited
	Workers        int
	DotDir         string
	CachePath      string
	LogFile        string
	Debug          bool
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Home:    ticket.DefaultHome,
		Bound:   search.EulerBound,
		Workers: 4,
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("%w: home must not be empty", ErrInvalidConfig)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time_limit must not be negative", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	switch c.Bound {
	case search.NoBound, search.EulerBound:
	default:
		return fmt.Errorf("%w: unknown bound policy %d", ErrInvalidConfig, c.Bound)
	}

	return nil
}

// SearchOptions translates the configuration into search options.
func (c Config) SearchOptions() []search.Option {
	opts := []search.Option{search.WithBound(c.Bound)}
	if c.ExactDominance {
		opts = append(opts, search.WithExactDominance())
	}

	return opts
}

// ParseBound maps a policy name to its BoundAlgo.
func ParseBound(s string) (search.BoundAlgo, error) {
	switch s {
	case "none":
		return search.NoBound, nil
	case "euler", "":
		return search.EulerBound, nil
	default:
		return 0, fmt.Errorf("%w: bound %q (expected none|euler)", ErrInvalidConfig, s)
	}
}
