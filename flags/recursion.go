package flags

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Recursion aggregates the recursion settings.
// Depth defaults to unlimited.
type Recursion struct {
	Enabled bool
	Depth   int
}

func configureRecursion(fs *pflag.FlagSet, cfg *config.Config) (Recursion, error) {
	enabled, err := resolve(false,
		recursionEnabledFromFlags(fs),
		recursionEnabledFromConfig(cfg),
	)
	if err != nil {
		return Recursion{}, err
	}
	depth, err := resolve(math.MaxInt,
		depthFromFlags(fs),
		depthFromConfig(cfg),
	)
	if err != nil {
		return Recursion{}, err
	}
	return Recursion{Enabled: enabled, Depth: depth}, nil
}

func recursionEnabledFromFlags(fs *pflag.FlagSet) lookup[bool] {
	return func() (bool, bool, error) {
		if !fs.Changed("recursive") {
			return false, false, nil
		}
		v, err := fs.GetBool("recursive")
		return v, err == nil, err
	}
}

func recursionEnabledFromConfig(cfg *config.Config) lookup[bool] {
	return func() (bool, bool, error) {
		if cfg.Recursion.Enabled == nil {
			return false, false, nil
		}
		return *cfg.Recursion.Enabled, true, nil
	}
}

func depthFromFlags(fs *pflag.FlagSet) lookup[int] {
	return func() (int, bool, error) {
		if !fs.Changed("depth") {
			return 0, false, nil
		}
		v, err := fs.GetInt("depth")
		if err != nil {
			return 0, false, err
		}
		if v < 0 {
			return 0, false, fmt.Errorf("depth must be a non-negative integer, got %d", v)
		}
		return v, true, nil
	}
}

func depthFromConfig(cfg *config.Config) lookup[int] {
	return func() (int, bool, error) {
		if cfg.Recursion.Depth == nil {
			return 0, false, nil
		}
		if *cfg.Recursion.Depth < 0 {
			log.Warn().Int("depth", *cfg.Recursion.Depth).
				Msg("ignoring negative recursion depth from config")
			return 0, false, nil
		}
		return *cfg.Recursion.Depth, true, nil
	}
}
