package config

import (
	stdlog "log"
	"os"
	"path"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/clockface-io/clockface/logzer"
)

var (
	once sync.Once
	cfg  *Config

	// fileCache memoizes raw config files by path
	// so repeated resolutions do not re-read from disk
	fileCache = cache.New(5*time.Minute, 10*time.Minute)
)

// LogLevel defines levels in logrus-style
type LogLevel int

// Enum levels
const (
	Error LogLevel = iota
	Warn
	Info
	Debug
	Trace
)

func (l LogLevel) String() string {
	return [...]string{"Error", "Warn", "Info", "Debug", "Trace"}[l]
}

// ColorCfg backs the color settings section
type ColorCfg struct {
	// When accepts "always"|"auto"|"never"
	When *string `env:"WHEN" yaml:"when"`
	// Theme accepts "default" or a theme file path
	Theme *string `env:"THEME" yaml:"theme"`
}

// IconsCfg backs the icon settings section
type IconsCfg struct {
	When      *string `env:"WHEN" yaml:"when"`
	Theme     *string `env:"THEME" yaml:"theme"`
	Separator *string `env:"SEPARATOR" yaml:"separator"`
}

// RecursionCfg backs the recursion settings section
type RecursionCfg struct {
	Enabled *bool `env:"ENABLED" yaml:"enabled"`
	Depth   *int  `env:"DEPTH" yaml:"depth"`
}

// SortingCfg backs the sorting settings section
type SortingCfg struct {
	Column      *string `env:"COLUMN" yaml:"column"`
	Reverse     *bool   `env:"REVERSE" yaml:"reverse"`
	DirGrouping *string `env:"DIRGROUPING" yaml:"dir-grouping"`
}

// Logging defines the logger configuration
// see defaults() for default values
type Logging struct {
	LogColors bool `env:"LOGCOLORS" yaml:"logColors"`
	// LogFile accepts file path to log in addition to stdout
	LogFile        string `env:"LOGFILE" yaml:"logFile"`
	LogFileMaxSize int64  `env:"LOGFILEMAXSIZE" yaml:"logFileMaxSize"`
	// Log files are rotated count times before being removed.
	// If count is 0, old versions are removed rather than rotated.
	LogFileRotate int      `env:"LOGFILEROTATE" yaml:"logFileRotate"`
	LogLevel      LogLevel `env:"LOGLEVEL" yaml:"logLevel"`
	LogTimeFormat string   `env:"LOGTIMEFORMAT" yaml:"logTimeFormat"`
}

// Config defines the settings loaded from the config file.
// Pointer fields distinguish "unset" from an explicit value so the
// resolution layer can fall through to the next source.
type Config struct {
	Classic   *bool        `env:"CLASSIC" yaml:"classic"`
	Blocks    []string     `env:"BLOCKS" yaml:"blocks"`
	Color     ColorCfg     `envPrefix:"COLOR_" yaml:"color"`
	Date      *string      `env:"DATE" yaml:"date"`
	Icons     IconsCfg     `envPrefix:"ICONS_" yaml:"icons"`
	Layout    *string      `env:"LAYOUT" yaml:"layout"`
	Recursion RecursionCfg `envPrefix:"RECURSION_" yaml:"recursion"`
	Size      *string      `env:"SIZE" yaml:"size"`
	Sorting   SortingCfg   `envPrefix:"SORTING_" yaml:"sorting"`

	Logging `yaml:",inline"`
}

func defaults() Config {
	return Config{
		Logging: Logging{
			LogColors:      false,
			LogFileMaxSize: 1024 * 1024 * 10, // 10MB
			LogFileRotate:  5,
			LogLevel:       1,
			LogTimeFormat:  time.RFC3339,
		},
	}
}

// GetConfig implements Singleton pattern
func GetConfig() *Config {
	once.Do(func() {
		/* buffer the logging while configuring */
		logBuf := &logzer.LogBuffer{
			Level: zerolog.TraceLevel,
			Size:  16,
		}
		log.Logger = zerolog.New(logBuf).
			With().Timestamp().Caller().Logger()

		/* merge defaults, file, and env */
		applyFlags()
		cfg = new(Config)
		*cfg = defaults()
		if err := cfg.LoadFile(cfg.Path()); err != nil {
			log.Warn().Err(err).
				Str("configPath", cfg.Path()).
				Msg("could not read config")
		}
		if err := applyEnv(cfg); err != nil {
			log.Warn().Err(err).
				Msg("could not apply env vars")
		}

		/* init logger and flush buffer */
		cfg.SetupLogger()
		logzer.WriteLogBuffer(logBuf)
	})
	return cfg
}

// Path returns config file path
func (cfg Config) Path() string {
	configPath := os.Getenv(ConfigEnv)
	if configPath == "" {
		configPath = ConfigName
		if wd, err := os.Getwd(); err == nil {
			configPath = path.Join(wd, ConfigName)
		}
	}
	return configPath
}

// LoadFile merges settings from the YAML file into the config.
// The raw file is memoized by path.
func (cfg *Config) LoadFile(configPath string) error {
	if data, ok := fileCache.Get(configPath); ok {
		return yaml.Unmarshal(data.([]byte), cfg)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Err(err).
			Str("configData", string(data)).
			Str("configPath", configPath).
			Msg("could not parse config")
		return err
	}
	fileCache.Set(configPath, data, cache.DefaultExpiration)
	return nil
}

// SetupLogger applies the logging settings to the global logger
func (cfg Config) SetupLogger() {
	if cfg.LogLevel > Trace {
		cfg.LogLevel = Trace
	}
	lvl := [...]zerolog.Level{3, 2, 1, 0, -1}[cfg.LogLevel]
	opts := []logzer.Option{
		logzer.WithColors(cfg.LogColors),
		logzer.WithLastErrors(10),
		logzer.WithLevel(lvl),
		logzer.WithTimeFormat(cfg.LogTimeFormat),
	}
	if cfg.LogFile != "" {
		opts = append(opts, logzer.WithLogFile(&logzer.LogFile{
			FilePath: cfg.LogFile,
			MaxSize:  cfg.LogFileMaxSize,
			Rotate:   cfg.LogFileRotate,
		}))
	}

	/* prevent writes in global logger */
	log.Logger = zerolog.Nop()
	/* reset to defaults */
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	/* apply options */
	w := logzer.NewWriter(opts...)
	/* set global logger */
	log.Logger = zerolog.New(w).
		With().Timestamp().Caller().
		Logger()
	/* set as standard logger output */
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}

// Hashsum calculates FNV non-cryptographic hash suitable for checking the equality
func (cfg Config) Hashsum() ([]byte, error) {
	return Hashsum(cfg)
}
