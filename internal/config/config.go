package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version       int           `mapstructure:"version" yaml:"version"`
	TemplatesRoot string        `mapstructure:"templates_root" yaml:"templates_root"`
	Jobs          int           `mapstructure:"jobs" yaml:"jobs"`
	ReportSuccess bool          `mapstructure:"report_success" yaml:"report_success"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`
}

// Default configuration values.
const (
	DefaultJobs          = 1
	DefaultWatchDebounce = 300 * time.Millisecond
)

// Init resets Viper and registers search paths, environment binding and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.AppName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("ZTPL")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("templates_root", paths.DefaultTemplatesRoot)
	viper.SetDefault("jobs", DefaultJobs)
	viper.SetDefault("report_success", false)
	viper.SetDefault("watch_debounce", DefaultWatchDebounce)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the default locations are searched and a
// missing file falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults only
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
