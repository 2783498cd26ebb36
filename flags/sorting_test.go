package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clockface-io/clockface/config"
)

func TestConfigureSorting(t *testing.T) {
	tests := []struct {
		name string
		args []string
		cfg  *config.Config
		want Sorting
	}{
		{"default", nil, new(config.Config),
			Sorting{Column: SortName, Order: OrderDefault, DirGrouping: GroupNone}},
		{"sort flag", []string{"--sort", "time"}, new(config.Config),
			Sorting{Column: SortTime}},
		{"timesort shortcut", []string{"--timesort"}, new(config.Config),
			Sorting{Column: SortTime}},
		{"sizesort shortcut", []string{"--sizesort"}, new(config.Config),
			Sorting{Column: SortSize}},
		{"extensionsort shortcut", []string{"--extensionsort"}, new(config.Config),
			Sorting{Column: SortExtension}},
		{"versionsort shortcut", []string{"--versionsort"}, new(config.Config),
			Sorting{Column: SortVersion}},
		{"sort beats shortcut", []string{"--sort", "size", "--timesort"}, new(config.Config),
			Sorting{Column: SortSize}},
		{"reverse", []string{"--reverse"}, new(config.Config),
			Sorting{Order: OrderReverse}},
		{"reverse off beats config", []string{"--reverse=false"},
			&config.Config{Sorting: config.SortingCfg{Reverse: ptr(true)}},
			Sorting{Order: OrderDefault}},
		{"group-dirs", []string{"--group-dirs", "last"}, new(config.Config),
			Sorting{DirGrouping: GroupLast}},
		{"group-directories-first", []string{"--group-directories-first"}, new(config.Config),
			Sorting{DirGrouping: GroupFirst}},
		{"group-dirs beats alias", []string{"--group-dirs", "none", "--group-directories-first"}, new(config.Config),
			Sorting{DirGrouping: GroupNone}},
		{"config", nil,
			&config.Config{Sorting: config.SortingCfg{
				Column: ptr("version"), Reverse: ptr(true), DirGrouping: ptr("first")}},
			Sorting{Column: SortVersion, Order: OrderReverse, DirGrouping: GroupFirst}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := configureSorting(parseFlags(t, tt.args...), tt.cfg)
			assert.NoError(t, err)
			if got != tt.want {
				t.Errorf("configureSorting() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSortColumn(t *testing.T) {
	for value, want := range map[string]SortColumn{
		"name": SortName, "extension": SortExtension, "size": SortSize,
		"time": SortTime, "version": SortVersion, "none": SortNone,
	} {
		got, err := ParseSortColumn(value)
		assert.NoError(t, err)
		if got != want {
			t.Errorf("ParseSortColumn(%q) = %v, want %v", value, got, want)
		}
	}
	if _, err := ParseSortColumn("date"); err == nil {
		t.Errorf("ParseSortColumn(date) expected error")
	}
}
