package flags

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// SizeFlag defines how to render entry sizes.
type SizeFlag int8

const (
	SizeDefault SizeFlag = iota
	SizeShort
	SizeBytes
)

// ParseSizeFlag parses a size value.
func ParseSizeFlag(value string) (SizeFlag, error) {
	switch value {
	case "default":
		return SizeDefault, nil
	case "short":
		return SizeShort, nil
	case "bytes":
		return SizeBytes, nil
	}
	return SizeDefault, fmt.Errorf("size could only be one of default, short and bytes, got %q", value)
}

func (s SizeFlag) String() string {
	switch s {
	case SizeShort:
		return "short"
	case SizeBytes:
		return "bytes"
	}
	return "default"
}

func configureSize(fs *pflag.FlagSet, cfg *config.Config) (SizeFlag, error) {
	return resolve(SizeDefault,
		sizeFromFlags(fs),
		sizeFromConfig(cfg),
	)
}

func sizeFromFlags(fs *pflag.FlagSet) lookup[SizeFlag] {
	return func() (SizeFlag, bool, error) {
		value, ok := stringFlag(fs, "size")
		if !ok {
			return SizeDefault, false, nil
		}
		v, err := ParseSizeFlag(value)
		if err != nil {
			return SizeDefault, false, err
		}
		return v, true, nil
	}
}

func sizeFromConfig(cfg *config.Config) lookup[SizeFlag] {
	return func() (SizeFlag, bool, error) {
		if cfg.Size == nil {
			return SizeDefault, false, nil
		}
		v, err := ParseSizeFlag(*cfg.Size)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring config value")
			return SizeDefault, false, nil
		}
		return v, true, nil
	}
}
