package flags

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Icons aggregates the icon settings.
type Icons struct {
	When      IconOption
	Theme     IconTheme
	Separator string
}

// IconOption defines when to display icons.
type IconOption int8

const (
	IconAuto IconOption = iota
	IconAlways
	IconNever
)

// ParseIconOption parses an icon option value.
func ParseIconOption(value string) (IconOption, error) {
	switch value {
	case "always":
		return IconAlways, nil
	case "auto":
		return IconAuto, nil
	case "never":
		return IconNever, nil
	}
	return IconAuto, fmt.Errorf("icons.when could only be one of auto, always and never, got %q", value)
}

func (o IconOption) String() string {
	switch o {
	case IconAlways:
		return "always"
	case IconNever:
		return "never"
	}
	return "auto"
}

// IconTheme selects the icon glyph set.
type IconTheme int8

const (
	IconThemeFancy IconTheme = iota
	IconThemeUnicode
)

// ParseIconTheme parses an icon theme value.
func ParseIconTheme(value string) (IconTheme, error) {
	switch value {
	case "fancy":
		return IconThemeFancy, nil
	case "unicode":
		return IconThemeUnicode, nil
	}
	return IconThemeFancy, fmt.Errorf("icons.theme could only be one of fancy and unicode, got %q", value)
}

func (t IconTheme) String() string {
	if t == IconThemeUnicode {
		return "unicode"
	}
	return "fancy"
}

// DefaultIconSeparator separates the icon from the entry name.
const DefaultIconSeparator = " "

func configureIcons(fs *pflag.FlagSet, cfg *config.Config) (Icons, error) {
	when, err := resolve(IconAuto,
		iconWhenFromFlags(fs),
		iconWhenFromConfig(cfg),
	)
	if err != nil {
		return Icons{}, err
	}
	theme, err := resolve(IconThemeFancy,
		iconThemeFromFlags(fs),
		iconThemeFromConfig(cfg),
	)
	if err != nil {
		return Icons{}, err
	}
	sep := DefaultIconSeparator
	if cfg.Icons.Separator != nil {
		sep = *cfg.Icons.Separator
	}
	return Icons{When: when, Theme: theme, Separator: sep}, nil
}

func iconWhenFromFlags(fs *pflag.FlagSet) lookup[IconOption] {
	return func() (IconOption, bool, error) {
		if boolFlag(fs, "classic") {
			return IconNever, true, nil
		}
		value, ok := stringFlag(fs, "icon")
		if !ok {
			return IconAuto, false, nil
		}
		v, err := ParseIconOption(value)
		if err != nil {
			return IconAuto, false, err
		}
		return v, true, nil
	}
}

func iconWhenFromConfig(cfg *config.Config) lookup[IconOption] {
	return func() (IconOption, bool, error) {
		if cfg.Classic != nil && *cfg.Classic {
			return IconNever, true, nil
		}
		if cfg.Icons.When == nil {
			return IconAuto, false, nil
		}
		v, err := ParseIconOption(*cfg.Icons.When)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return IconAuto, false, nil
		}
		return v, true, nil
	}
}

func iconThemeFromFlags(fs *pflag.FlagSet) lookup[IconTheme] {
	return func() (IconTheme, bool, error) {
		value, ok := stringFlag(fs, "icon-theme")
		if !ok {
			return IconThemeFancy, false, nil
		}
		v, err := ParseIconTheme(value)
		if err != nil {
			return IconThemeFancy, false, err
		}
		return v, true, nil
	}
}

func iconThemeFromConfig(cfg *config.Config) lookup[IconTheme] {
	return func() (IconTheme, bool, error) {
		if cfg.Icons.Theme == nil {
			return IconThemeFancy, false, nil
		}
		v, err := ParseIconTheme(*cfg.Icons.Theme)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return IconThemeFancy, false, nil
		}
		return v, true, nil
	}
}
