package flags

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// DateFlag defines how to render entry dates.
// Layout is set for DateFormatted only.
type DateFlag struct {
	Mode   DateMode
	Layout string
}

// DateMode is the date rendering mode.
type DateMode int8

const (
	DateDate DateMode = iota
	DateRelative
	DateISO
	DateFormatted
)

// ParseDateFlag parses a date value. A value starting with "+"
// carries a custom layout for the rest of the string.
func ParseDateFlag(value string) (DateFlag, error) {
	switch value {
	case "date":
		return DateFlag{Mode: DateDate}, nil
	case "relative":
		return DateFlag{Mode: DateRelative}, nil
	case "iso":
		return DateFlag{Mode: DateISO}, nil
	}
	if layout, ok := strings.CutPrefix(value, "+"); ok {
		if layout == "" {
			return DateFlag{}, fmt.Errorf("date format layout is empty")
		}
		return DateFlag{Mode: DateFormatted, Layout: layout}, nil
	}
	return DateFlag{}, fmt.Errorf("date could only be one of date, relative, iso and +<layout>, got %q", value)
}

func (d DateFlag) String() string {
	switch d.Mode {
	case DateRelative:
		return "relative"
	case DateISO:
		return "iso"
	case DateFormatted:
		return "+" + d.Layout
	}
	return "date"
}

func configureDate(fs *pflag.FlagSet, cfg *config.Config) (DateFlag, error) {
	return resolve(DateFlag{Mode: DateDate},
		dateFromFlags(fs),
		dateFromConfig(cfg),
	)
}

func dateFromFlags(fs *pflag.FlagSet) lookup[DateFlag] {
	return func() (DateFlag, bool, error) {
		if boolFlag(fs, "classic") {
			return DateFlag{Mode: DateDate}, true, nil
		}
		value, ok := stringFlag(fs, "date")
		if !ok {
			return DateFlag{}, false, nil
		}
		v, err := ParseDateFlag(value)
		if err != nil {
			return DateFlag{}, false, err
		}
		return v, true, nil
	}
}

func dateFromConfig(cfg *config.Config) lookup[DateFlag] {
	return func() (DateFlag, bool, error) {
		if cfg.Classic != nil && *cfg.Classic {
			return DateFlag{Mode: DateDate}, true, nil
		}
		if cfg.Date == nil {
			return DateFlag{}, false, nil
		}
		v, err := ParseDateFlag(*cfg.Date)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return DateFlag{}, false, nil
		}
		return v, true, nil
	}
}
