// Package config layers command-line flags, KCOMPLEX_* environment
// variables and an optional config file into one immutable Config.
//
// Precedence is flag > environment > config file > flag default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kcomplex-core/mode"
	"kcomplex/internal/output"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "KCOMPLEX"

// Flag and config-file keys.
const (
	KeyK          = "k"
	KeyMode       = "mode"
	KeyMask       = "mask"
	KeyFilter     = "filter"
	KeyWindowSize = "window-size"
	KeyThreshold  = "threshold"
	KeyInvert     = "invert"
	KeyOutput     = "output"
	KeyHeader     = "header"
	KeySummary    = "summary"
	KeyLogLevel   = "log-level"
	KeyQuiet      = "quiet"
	KeyConfig     = "config"
	KeyEnvFile    = "env-file"
)

// Log levels accepted by --log-level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the application-level configuration of one run.
type Config struct {
	K          int     `mapstructure:"k"`
	Mode       string  `mapstructure:"mode"`
	Mask       bool    `mapstructure:"mask"`
	Filter     bool    `mapstructure:"filter"`
	WindowSize int     `mapstructure:"window-size"`
	Threshold  float64 `mapstructure:"threshold"`
	Invert     bool    `mapstructure:"invert"`

	Output  string `mapstructure:"output"`
	Header  bool   `mapstructure:"header"`
	Summary string `mapstructure:"summary"`

	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`

	// ThresholdSet is true when a threshold came from any source other
	// than the flag default.
	ThresholdSet bool `mapstructure:"-"`

	// Inputs are the sequence files to read; empty means stdin.
	Inputs []string `mapstructure:"-"`
}

// Validate checks the application-level settings. Mode semantics are
// checked by ModeConfig.
func (c *Config) Validate() error {
	formats := make([]interface{}, 0, len(output.Formats))
	for _, f := range output.Formats {
		formats = append(formats, f)
	}
	levels := make([]interface{}, 0, len(LogLevels))
	for _, l := range LogLevels {
		levels = append(levels, l)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Output, validation.Required, validation.In(formats...)),
		validation.Field(&c.LogLevel, validation.Required, validation.In(levels...)),
		validation.Field(&c.Summary, validation.By(parentDirExists)),
	)
}

// parentDirExists rejects a --summary path whose directory is missing.
func parentDirExists(value interface{}) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	fi, err := os.Stat(filepath.Dir(path))
	if err != nil || !fi.IsDir() {
		return errors.New("directory does not exist")
	}
	return nil
}

// ModeConfig resolves the requested mode and returns the core configuration.
// It fails with a *mode.ConfigError for conflicting or invalid settings.
func (c *Config) ModeConfig() (mode.Config, error) {
	m, err := mode.Resolve(c.Mode, c.Mask, c.Filter)
	if err != nil {
		return mode.Config{}, err
	}
	mc := mode.Config{
		Mode:         m,
		K:            c.K,
		WindowSize:   c.WindowSize,
		Threshold:    c.Threshold,
		ThresholdSet: c.ThresholdSet,
		Invert:       c.Invert,
	}
	if err := mc.Validate(); err != nil {
		return mode.Config{}, err
	}
	return mc, nil
}

// SlogLevel maps LogLevel to a slog.Level; Quiet forces error.
func (c *Config) SlogLevel() slog.Level {
	if c.Quiet {
		return slog.LevelError
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Load reads an optional env file and config file, binds flags and the
// environment, and returns the merged, validated Config.
func Load(flags *pflag.FlagSet, inputs []string) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(KeyEnvFile); path != "" {
		if err := LoadEnvFile(path); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	c.ThresholdSet = v.IsSet(KeyThreshold)
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Inputs = append([]string(nil), inputs...)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// LoadEnvFile exports the variables of a dotenv file. Variables already
// present in the environment win. A missing file is an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("env file %s: not found", path)
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}
