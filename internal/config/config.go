// Package config provides Viper-based configuration loading for dungeonforge.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// EnvPrefix prefixes every environment override, e.g. DUNGEONFORGE_GENERATION_ROOM_COUNT.
const EnvPrefix = "DUNGEONFORGE"

// GenerationConfig holds the arguments of a generation run.
type GenerationConfig struct {
	// Seed is folded into the random source. Equal seeds give equal dungeons.
	Seed []int `mapstructure:"seed"`
	// RoomCount is the number of rooms the walk aims for.
	RoomCount int `mapstructure:"room_count"`
	// MaxTries bounds the number of attempts before giving up.
	MaxTries int `mapstructure:"max_tries"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	// Enabled turns on span export. Off by default.
	Enabled bool `mapstructure:"enabled"`
	// Endpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT when set.
	Endpoint string `mapstructure:"endpoint"`
	// ServiceName is reported as service.name.
	ServiceName string `mapstructure:"service_name"`
}

// RenderConfig holds output settings for the CLI.
type RenderConfig struct {
	// Mode is "ascii" (print and exit) or "tui" (interactive viewer).
	Mode string `mapstructure:"mode"`
	// Color is "auto", "always" or "never".
	Color string `mapstructure:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	Generation GenerationConfig `mapstructure:"generation"`
	Tuning     world.Tuning     `mapstructure:"tuning"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Render     RenderConfig     `mapstructure:"render"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGeneration(c.Generation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, "tuning: "+err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTelemetry(c.Telemetry); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRender(c.Render); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGeneration(g GenerationConfig) error {
	var errs []string
	if g.RoomCount < 1 {
		errs = append(errs, fmt.Sprintf("generation.room_count must be >= 1, got %d", g.RoomCount))
	}
	if g.MaxTries < 1 {
		errs = append(errs, fmt.Sprintf("generation.max_tries must be >= 1, got %d", g.MaxTries))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	if t.Enabled && t.ServiceName == "" {
		return fmt.Errorf("telemetry.service_name must not be empty when telemetry is enabled")
	}
	return nil
}

func validateRender(r RenderConfig) error {
	validModes := map[string]bool{"ascii": true, "tui": true}
	if !validModes[r.Mode] {
		return fmt.Errorf("render.mode must be one of [ascii, tui], got %q", r.Mode)
	}
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[r.Color] {
		return fmt.Errorf("render.color must be one of [auto, always, never], got %q", r.Color)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or overrides are given.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generation.seed", []int{1, 2, 3, 8})
	v.SetDefault("generation.room_count", 19)
	v.SetDefault("generation.max_tries", 10)

	tuning := world.DefaultTuning()
	v.SetDefault("tuning.max_corridor_length", tuning.MaxCorridorLength)
	v.SetDefault("tuning.abort_variance", tuning.AbortVariance)
	v.SetDefault("tuning.turn_variance", tuning.TurnVariance)
	v.SetDefault("tuning.lock_divisor", tuning.LockDivisor)
	v.SetDefault("tuning.lock_jitter", tuning.LockJitter)
	v.SetDefault("tuning.door_ratio", tuning.DoorRatio)
	v.SetDefault("tuning.key_spacing", tuning.KeySpacing)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "dungeonforge")

	v.SetDefault("render.mode", "ascii")
	v.SetDefault("render.color", "auto")
}
