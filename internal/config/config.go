// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PHAGETOOLS_ARAGORN_PATH.
const EnvPrefix = "PHAGETOOLS"

const (
	DefaultAragornPath      = "aragorn"
	DefaultTranslationTable = 11
	DefaultProdigalVersion  = "v2.6.3"
	DefaultProdigalBaseURL  = "https://github.com/hyattpd/Prodigal/releases/download"
	DefaultProdigalTimeout  = 5 * time.Minute
	DefaultLogLevel         = "info"
	defaultConfigName       = "phagetools"
	defaultConfigType       = "yaml"
)

type AragornConfig struct {
	Path             string `mapstructure:"path"`              // executable name or absolute path
	TranslationTable int    `mapstructure:"translation_table"` // passed as -gc<N>
}

type ProdigalConfig struct {
	BaseURL string        `mapstructure:"base_url"` // release download prefix, version is appended
	Version string        `mapstructure:"version"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Aragorn  AragornConfig  `mapstructure:"aragorn"`
	Prodigal ProdigalConfig `mapstructure:"prodigal"`
	Log      LogConfig      `mapstructure:"log"`
}

// Default returns the built-in configuration without touching disk or env.
func Default() Config {
	return Config{
		Aragorn:  AragornConfig{Path: DefaultAragornPath, TranslationTable: DefaultTranslationTable},
		Prodigal: ProdigalConfig{BaseURL: DefaultProdigalBaseURL, Version: DefaultProdigalVersion, Timeout: DefaultProdigalTimeout},
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("aragorn.path", d.Aragorn.Path)
	v.SetDefault("aragorn.translation_table", d.Aragorn.TranslationTable)
	v.SetDefault("prodigal.base_url", d.Prodigal.BaseURL)
	v.SetDefault("prodigal.version", d.Prodigal.Version)
	v.SetDefault("prodigal.timeout", d.Prodigal.Timeout.String())
	v.SetDefault("log.level", d.Log.Level)
}

// Load builds the configuration from defaults, an optional YAML file and
// PHAGETOOLS_* environment variables (highest precedence).
//
// With path == "" the file is optional and looked up as phagetools.yaml in the
// working directory and then in the user config dir. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType(defaultConfigType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, defaultConfigName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Aragorn.Path) == "" {
		return errors.New("config: aragorn.path must not be empty")
	}
	if c.Aragorn.TranslationTable <= 0 {
		return fmt.Errorf("config: aragorn.translation_table must be > 0, got %d", c.Aragorn.TranslationTable)
	}
	if strings.TrimSpace(c.Prodigal.BaseURL) == "" {
		return errors.New("config: prodigal.base_url must not be empty")
	}
	if strings.TrimSpace(c.Prodigal.Version) == "" {
		return errors.New("config: prodigal.version must not be empty")
	}
	if c.Prodigal.Timeout < 0 {
		return errors.New("config: prodigal.timeout must be ≥ 0")
	}
	return nil
}
