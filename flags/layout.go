package flags

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Layout defines the overall shape of the output.
type Layout int8

const (
	LayoutGrid Layout = iota
	LayoutOneLine
	LayoutTree
)

// ParseLayout parses a layout value.
func ParseLayout(value string) (Layout, error) {
	switch value {
	case "grid":
		return LayoutGrid, nil
	case "oneline":
		return LayoutOneLine, nil
	case "tree":
		return LayoutTree, nil
	}
	return LayoutGrid, fmt.Errorf("layout could only be one of grid, oneline and tree, got %q", value)
}

func (l Layout) String() string {
	switch l {
	case LayoutOneLine:
		return "oneline"
	case LayoutTree:
		return "tree"
	}
	return "grid"
}

func configureLayout(fs *pflag.FlagSet, cfg *config.Config) (Layout, error) {
	return resolve(LayoutGrid,
		layoutFromFlags(fs),
		layoutFromConfig(cfg),
	)
}

func layoutFromFlags(fs *pflag.FlagSet) lookup[Layout] {
	return func() (Layout, bool, error) {
		switch {
		case boolFlag(fs, "tree"):
			return LayoutTree, true, nil
		case boolFlag(fs, "long"), boolFlag(fs, "oneline"):
			return LayoutOneLine, true, nil
		}
		return LayoutGrid, false, nil
	}
}

func layoutFromConfig(cfg *config.Config) lookup[Layout] {
	return func() (Layout, bool, error) {
		if cfg.Layout == nil {
			return LayoutGrid, false, nil
		}
		v, err := ParseLayout(*cfg.Layout)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return LayoutGrid, false, nil
		}
		return v, true, nil
	}
}
