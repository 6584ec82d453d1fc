package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	// DefaultFileName is the optional per-project configuration file.
	DefaultFileName = ".cargo-launcher.toml"
	// DotEnvFileName is the optional dotenv file read before the environment.
	DotEnvFileName = ".env"

	envPrefix = "CARGO_LAUNCHER_"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Path is an explicit config file; it must exist when set.
	Path string

	// Getenv looks up process environment variables (defaults to os.Getenv)
	Getenv func(string) string

	// Overrides are applied last, typically from CLI flags
	Overrides Overrides
}

// Overrides holds flag values that take precedence over every other source.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	WorkDir string
	Debug   bool
}

// Loader resolves configuration from defaults, a TOML file, a dotenv file,
// the environment and flag overrides, in increasing priority.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a configuration loader reading files from fsys
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load resolves and validates the configuration
func (l *Loader) Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if err := l.applyFile(cfg, opts.Path); err != nil {
		return nil, err
	}

	dotenv, err := l.readDotEnv()
	if err != nil {
		return nil, err
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if opts.Overrides.WorkDir != "" {
		cfg.WorkDir = opts.Overrides.WorkDir
	}
	if opts.Overrides.Debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) applyFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (l *Loader) readDotEnv() (map[string]string, error) {
	f, err := l.fs.Open(DotEnvFileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", DotEnvFileName, err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DotEnvFileName, err)
	}
	return vars, nil
}

func applyEnv(cfg *Config, lookup func(string) string) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(lookup(envPrefix + key)); v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v := strings.TrimSpace(lookup(envPrefix + key))
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s value %q: %w", envPrefix, key, v, err)
		}
		*dst = b
		return nil
	}

	// cargo exports CARGO to the subcommands it runs
	if v := strings.TrimSpace(lookup("CARGO")); v != "" {
		cfg.CargoPath = v
	}

	setString("WORK_DIR", &cfg.WorkDir)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("MANIFEST_READER", &cfg.ManifestReader)
	setString("CARGO", &cfg.CargoPath)
	setString("OPEN_COMMAND", &cfg.OpenCommand)

	if err := setBool("STRICT_EXIT", &cfg.StrictExit); err != nil {
		return err
	}
	return setBool("DEBUG", &cfg.Debug)
}
