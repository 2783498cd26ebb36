package flags

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Sorting aggregates the sort settings.
type Sorting struct {
	Column      SortColumn
	Order       SortOrder
	DirGrouping DirGrouping
}

// SortColumn defines what to sort the entries by.
type SortColumn int8

const (
	SortName SortColumn = iota
	SortExtension
	SortSize
	SortTime
	SortVersion
	SortNone
)

// ParseSortColumn parses a sort column value.
func ParseSortColumn(value string) (SortColumn, error) {
	switch value {
	case "name":
		return SortName, nil
	case "extension":
		return SortExtension, nil
	case "size":
		return SortSize, nil
	case "time":
		return SortTime, nil
	case "version":
		return SortVersion, nil
	case "none":
		return SortNone, nil
	}
	return SortName, fmt.Errorf("sorting.column could only be one of name, extension, size, time, version and none, got %q", value)
}

func (c SortColumn) String() string {
	switch c {
	case SortExtension:
		return "extension"
	case SortSize:
		return "size"
	case SortTime:
		return "time"
	case SortVersion:
		return "version"
	case SortNone:
		return "none"
	}
	return "name"
}

// SortOrder defines the sort direction.
type SortOrder int8

const (
	OrderDefault SortOrder = iota
	OrderReverse
)

// DirGrouping defines where to place directories relative to files.
type DirGrouping int8

const (
	GroupNone DirGrouping = iota
	GroupFirst
	GroupLast
)

// ParseDirGrouping parses a directory grouping value.
func ParseDirGrouping(value string) (DirGrouping, error) {
	switch value {
	case "first":
		return GroupFirst, nil
	case "last":
		return GroupLast, nil
	case "none":
		return GroupNone, nil
	}
	return GroupNone, fmt.Errorf("sorting.dir-grouping could only be one of first, last and none, got %q", value)
}

func (g DirGrouping) String() string {
	switch g {
	case GroupFirst:
		return "first"
	case GroupLast:
		return "last"
	}
	return "none"
}

func configureSorting(fs *pflag.FlagSet, cfg *config.Config) (Sorting, error) {
	column, err := resolve(SortName,
		sortColumnFromFlags(fs),
		sortColumnFromConfig(cfg),
	)
	if err != nil {
		return Sorting{}, err
	}
	order, err := resolve(OrderDefault,
		sortOrderFromFlags(fs),
		sortOrderFromConfig(cfg),
	)
	if err != nil {
		return Sorting{}, err
	}
	grouping, err := resolve(GroupNone,
		dirGroupingFromFlags(fs),
		dirGroupingFromConfig(cfg),
	)
	if err != nil {
		return Sorting{}, err
	}
	return Sorting{Column: column, Order: order, DirGrouping: grouping}, nil
}

/* the sort shortcuts lose to an explicit --sort */
func sortColumnFromFlags(fs *pflag.FlagSet) lookup[SortColumn] {
	return func() (SortColumn, bool, error) {
		if value, ok := stringFlag(fs, "sort"); ok {
			v, err := ParseSortColumn(value)
			if err != nil {
				return SortName, false, err
			}
			return v, true, nil
		}
		switch {
		case boolFlag(fs, "timesort"):
			return SortTime, true, nil
		case boolFlag(fs, "sizesort"):
			return SortSize, true, nil
		case boolFlag(fs, "extensionsort"):
			return SortExtension, true, nil
		case boolFlag(fs, "versionsort"):
			return SortVersion, true, nil
		}
		return SortName, false, nil
	}
}

func sortColumnFromConfig(cfg *config.Config) lookup[SortColumn] {
	return func() (SortColumn, bool, error) {
		if cfg.Sorting.Column == nil {
			return SortName, false, nil
		}
		v, err := ParseSortColumn(*cfg.Sorting.Column)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return SortName, false, nil
		}
		return v, true, nil
	}
}

func sortOrderFromFlags(fs *pflag.FlagSet) lookup[SortOrder] {
	return func() (SortOrder, bool, error) {
		if !fs.Changed("reverse") {
			return OrderDefault, false, nil
		}
		if v, err := fs.GetBool("reverse"); err == nil && v {
			return OrderReverse, true, nil
		}
		return OrderDefault, true, nil
	}
}

func sortOrderFromConfig(cfg *config.Config) lookup[SortOrder] {
	return func() (SortOrder, bool, error) {
		if cfg.Sorting.Reverse == nil {
			return OrderDefault, false, nil
		}
		if *cfg.Sorting.Reverse {
			return OrderReverse, true, nil
		}
		return OrderDefault, true, nil
	}
}

func dirGroupingFromFlags(fs *pflag.FlagSet) lookup[DirGrouping] {
	return func() (DirGrouping, bool, error) {
		if value, ok := stringFlag(fs, "group-dirs"); ok {
			v, err := ParseDirGrouping(value)
			if err != nil {
				return GroupNone, false, err
			}
			return v, true, nil
		}
		if boolFlag(fs, "group-directories-first") {
			return GroupFirst, true, nil
		}
		return GroupNone, false, nil
	}
}

func dirGroupingFromConfig(cfg *config.Config) lookup[DirGrouping] {
	return func() (DirGrouping, bool, error) {
		if cfg.Sorting.DirGrouping == nil {
			return GroupNone, false, nil
		}
		v, err := ParseDirGrouping(*cfg.Sorting.DirGrouping)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return GroupNone, false, nil
		}
		return v, true, nil
	}
}
