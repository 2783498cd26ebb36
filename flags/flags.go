// Package flags resolves the listing settings from their sources.
// For each setting the precedence order is: explicit cli flag,
// environment variable, config file value, type default.
package flags

import (
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Flags is the fully resolved set of listing settings.
type Flags struct {
	Blocks    Blocks
	Color     Color
	Date      DateFlag
	Icons     Icons
	Layout    Layout
	Recursion Recursion
	Size      SizeFlag
	Sorting   Sorting
}

// RegisterFlags declares the cli surface on the flag set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("blocks", "", "comma separated list of columns to display")
	fs.Bool("classic", false, "enable classic mode: no colors, no icons")
	fs.String("color", "auto", "when to use colors: always, auto, never")
	fs.Bool("context", false, "display the security context column")
	fs.String("date", "date", "how to display dates: date, relative, iso or +<layout>")
	fs.Int("depth", 0, "stop recursing at the given depth")
	fs.String("group-dirs", "", "group directories: first, last, none")
	fs.Bool("group-directories-first", false, "group directories before files")
	fs.String("icon", "auto", "when to display icons: always, auto, never")
	fs.String("icon-theme", "fancy", "icon theme: fancy, unicode")
	fs.Bool("inode", false, "display the inode column")
	fs.Bool("long", false, "display extended metadata as a table")
	fs.Bool("oneline", false, "display one entry per line")
	fs.Bool("recursive", false, "recurse into directories")
	fs.Bool("reverse", false, "reverse the sort order")
	fs.String("size", "default", "how to display sizes: default, short, bytes")
	fs.String("sort", "", "sort by: size, time, version, extension")
	fs.Bool("sizesort", false, "sort by size")
	fs.Bool("timesort", false, "sort by time modified")
	fs.Bool("extensionsort", false, "sort by file extension")
	fs.Bool("versionsort", false, "natural sort of version numbers")
	fs.Bool("tree", false, "recurse into directories and present the result as a tree")
}

// ConfigureFrom resolves every setting from the parsed flag set,
// the environment and the loaded config.
func ConfigureFrom(fs *pflag.FlagSet, cfg *config.Config) (Flags, error) {
	blocks, err := configureBlocks(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	color, err := configureColor(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	date, err := configureDate(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	icons, err := configureIcons(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	layout, err := configureLayout(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	recursion, err := configureRecursion(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	size, err := configureSize(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	sorting, err := configureSorting(fs, cfg)
	if err != nil {
		return Flags{}, err
	}
	return Flags{
		Blocks:    blocks,
		Color:     color,
		Date:      date,
		Icons:     icons,
		Layout:    layout,
		Recursion: recursion,
		Size:      size,
		Sorting:   sorting,
	}, nil
}

// lookup probes one source for a setting value
type lookup[T any] func() (T, bool, error)

// resolve applies the setting precedence, first hit wins
func resolve[T any](def T, lookups ...lookup[T]) (T, error) {
	for _, l := range lookups {
		v, ok, err := l()
		if err != nil {
			return def, err
		}
		if ok {
			return v, nil
		}
	}
	return def, nil
}

func boolFlag(fs *pflag.FlagSet, name string) bool {
	if !fs.Changed(name) {
		return false
	}
	v, err := fs.GetBool(name)
	return err == nil && v
}

func stringFlag(fs *pflag.FlagSet, name string) (string, bool) {
	if !fs.Changed(name) {
		return "", false
	}
	v, err := fs.GetString(name)
	if err != nil {
		return "", false
	}
	return v, true
}
