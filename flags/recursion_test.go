package flags

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clockface-io/clockface/config"
)

func TestConfigureRecursion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		cfg  *config.Config
		want Recursion
	}{
		{"default", nil, new(config.Config),
			Recursion{Enabled: false, Depth: math.MaxInt}},
		{"recursive flag", []string{"--recursive"}, new(config.Config),
			Recursion{Enabled: true, Depth: math.MaxInt}},
		{"depth flag", []string{"--recursive", "--depth", "2"}, new(config.Config),
			Recursion{Enabled: true, Depth: 2}},
		{"config", nil,
			&config.Config{Recursion: config.RecursionCfg{Enabled: ptr(true), Depth: ptr(7)}},
			Recursion{Enabled: true, Depth: 7}},
		{"flag beats config", []string{"--recursive=false", "--depth", "1"},
			&config.Config{Recursion: config.RecursionCfg{Enabled: ptr(true), Depth: ptr(7)}},
			Recursion{Enabled: false, Depth: 1}},
		{"negative config depth ignored", nil,
			&config.Config{Recursion: config.RecursionCfg{Depth: ptr(-3)}},
			Recursion{Enabled: false, Depth: math.MaxInt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := configureRecursion(parseFlags(t, tt.args...), tt.cfg)
			assert.NoError(t, err)
			if got != tt.want {
				t.Errorf("configureRecursion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfigureRecursionNegativeDepthFlag(t *testing.T) {
	_, err := configureRecursion(parseFlags(t, "--depth", "-1"), new(config.Config))
	if err == nil {
		t.Errorf("configureRecursion() expected error for negative depth")
	}
}
