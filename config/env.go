package config

import (
	"errors"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

var (
	// AllowFlags defines processing the cli arguments
	// true by default
	// false when embedding the resolver in tooling
	AllowFlags = true
	// EnvPrefix defines name prefix for environment variables
	// with struct-path selector and value, for example:
	//    CLOCKFACE_SORTING_COLUMN=time
	EnvPrefix = "CLOCKFACE_"
	// ConfigEnv defines environment variable for config file path, overrides the ConfigName
	ConfigEnv = "CLOCKFACE_CONFIG"
	// ConfigName defines default filename for look in work directory if ConfigEnv is empty
	ConfigName = "config.yaml"
)

func applyFlags() {
	if !AllowFlags {
		return
	}
	/* the listing flags live on the caller's flag set,
	so unknown flags are passed through here */
	flags := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.StringVar(&EnvPrefix, "env-prefix", "CLOCKFACE_",
		`prefix for environment variables, "CLOCKFACE_" by default`)
	flags.StringVar(&ConfigEnv, "config-env", "CLOCKFACE_CONFIG",
		`environment variable for config file path, "CLOCKFACE_CONFIG" by default`)
	_ = flags.Parse(os.Args[1:])

	for _, s := range []*string{&ConfigEnv} {
		*s = strings.TrimPrefix(*s, "CLOCKFACE_")
		*s = strings.TrimPrefix(*s, EnvPrefix)
		*s = EnvPrefix + *s
	}
}

func applyEnv(v ...interface{}) error {
	var ee []error
	for i := range v {
		if err := env.ParseWithOptions(v[i], env.Options{Prefix: EnvPrefix}); err != nil {
			ee = append(ee, err)
		}
	}
	if len(ee) > 0 {
		return errors.Join(ee...)
	}
	return nil
}
