package flags

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Color aggregates the color settings.
type Color struct {
	When  ColorOption
	Theme ThemeOption
}

// ColorOption defines when to colorize the output.
type ColorOption int8

const (
	ColorAuto ColorOption = iota
	ColorAlways
	ColorNever
)

// ParseColorOption parses a color option value.
func ParseColorOption(value string) (ColorOption, error) {
	switch value {
	case "always":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("color.when could only be one of auto, always and never, got %q", value)
}

func (o ColorOption) String() string {
	switch o {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return "auto"
}

// ThemeOption names the color theme, either the built-in
// default or a path to a theme file.
type ThemeOption string

// ThemeDefault is the built-in color theme.
const ThemeDefault ThemeOption = "default"

func configureColor(fs *pflag.FlagSet, cfg *config.Config) (Color, error) {
	when, err := resolve(ColorAuto,
		colorWhenFromFlags(fs),
		colorWhenFromEnv,
		colorWhenFromConfig(cfg),
	)
	if err != nil {
		return Color{}, err
	}
	return Color{When: when, Theme: themeFromConfig(cfg)}, nil
}

func colorWhenFromFlags(fs *pflag.FlagSet) lookup[ColorOption] {
	return func() (ColorOption, bool, error) {
		if boolFlag(fs, "classic") {
			return ColorNever, true, nil
		}
		value, ok := stringFlag(fs, "color")
		if !ok {
			return ColorAuto, false, nil
		}
		v, err := ParseColorOption(value)
		if err != nil {
			return ColorAuto, false, err
		}
		return v, true, nil
	}
}

/* NO_COLOR disables colors whenever set, see https://no-color.org */
func colorWhenFromEnv() (ColorOption, bool, error) {
	if v := os.Getenv("NO_COLOR"); v != "" {
		return ColorNever, true, nil
	}
	return ColorAuto, false, nil
}

func colorWhenFromConfig(cfg *config.Config) lookup[ColorOption] {
	return func() (ColorOption, bool, error) {
		if cfg.Classic != nil && *cfg.Classic {
			return ColorNever, true, nil
		}
		if cfg.Color.When == nil {
			return ColorAuto, false, nil
		}
		v, err := ParseColorOption(*cfg.Color.When)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return ColorAuto, false, nil
		}
		return v, true, nil
	}
}

func themeFromConfig(cfg *config.Config) ThemeOption {
	if cfg.Color.Theme != nil && *cfg.Color.Theme != "" {
		return ThemeOption(*cfg.Color.Theme)
	}
	return ThemeDefault
}
