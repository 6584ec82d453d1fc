package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Manifest reader implementations selectable through manifest_reader.
const (
	ManifestReaderCargo = "cargo"
	ManifestReaderTOML  = "toml"
)

// Config is the resolved tool configuration
type Config struct {
	WorkDir        string `toml:"work_dir" validate:"required"`
	LogLevel       string `toml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	ManifestReader string `toml:"manifest_reader" validate:"oneof=cargo toml"`
	CargoPath      string `toml:"cargo_path" validate:"required"`
	OpenCommand    string `toml:"open_command" validate:"required"`
	// StrictExit turns a non-zero exit status of helper processes into an error.
	StrictExit bool `toml:"strict_exit"`
	Debug      bool `toml:"debug"`
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		WorkDir:        "target/launcher",
		LogLevel:       "info",
		ManifestReader: ManifestReaderCargo,
		CargoPath:      "cargo",
		OpenCommand:    "open",
	}
}

// EffectiveLogLevel returns debug when debug mode is on, the configured level otherwise.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field holds a usable value
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
