package di

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/application/services"
	"github.com/cargo-launcher/cargo-launcher/internal/config"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/launchers"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/logging"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/manifest"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/platform"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/process"
	templateinfra "github.com/cargo-launcher/cargo-launcher/internal/infrastructure/template"
	"github.com/cargo-launcher/cargo-launcher/internal/interfaces/cli"
)

// Options are the process-level inputs the container is built from.
// Zero values select the real host: OS filesystem, detected platform, stderr logs.
type Options struct {
	Fs        afero.Fs
	Env       *platform.Environment
	Runner    ports.CommandRunner
	LogWriter io.Writer
	Load      config.LoadOptions
}

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Infrastructure
	Fs             afero.Fs
	Env            platform.Environment
	Runner         ports.CommandRunner
	Renderer       ports.TemplateRenderer
	ManifestReader ports.ManifestReader
	LaunchConfig   *launchers.LaunchConfig
	Selector       *launchers.Selector

	// Application services
	InstallService *services.InstallService
	LaunchService  *services.LaunchService
}

// NewContainer creates and configures the dependency injection container
func NewContainer(opts Options) (*Container, error) {
	c := &Container{Fs: opts.Fs}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	if opts.Env != nil {
		c.Env = *opts.Env
	} else {
		c.Env = platform.Detect()
	}
	if opts.Load.Getenv == nil {
		opts.Load.Getenv = c.Env.Getenv
	}

	cfg, err := config.NewLoader(c.Fs).Load(opts.Load)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	c.Config = cfg

	logWriter := opts.LogWriter
	if logWriter == nil {
		logWriter = os.Stderr
	}
	c.Logger = logging.NewConsoleLogger(logWriter, cfg.EffectiveLogLevel())

	c.initializeComponents(opts.Runner)
	return c, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents(runner ports.CommandRunner) {
	// 1. Infrastructure
	c.Runner = runner
	if c.Runner == nil {
		c.Runner = process.NewExecutor(c.Logger, process.WithStrictExit(c.Config.StrictExit))
	}
	c.Renderer = templateinfra.NewRenderer()

	switch c.Config.ManifestReader {
	case config.ManifestReaderTOML:
		c.ManifestReader = manifest.NewTOMLReader(c.Fs)
	default:
		c.ManifestReader = manifest.NewCargoReader(c.Runner, c.Config.CargoPath, c.Logger)
	}

	// 2. Launcher backends
	c.LaunchConfig = launchers.NewLaunchConfig(c.Fs, c.Config.WorkDir, launchers.DefaultIcon)
	c.Selector = launchers.NewSelector(c.LaunchConfig, launchers.Deps{
		Env:         c.Env,
		Renderer:    c.Renderer,
		Runner:      c.Runner,
		Logger:      c.Logger,
		OpenCommand: c.Config.OpenCommand,
	})

	// 3. Application services
	c.InstallService = services.NewInstallService(c.Logger)
	c.LaunchService = services.NewLaunchService(c.ManifestReader, c.Selector, c.InstallService, c.Logger)
}

// Runtime exposes the container to CLI commands
func (c *Container) Runtime() *cli.Runtime {
	return &cli.Runtime{
		Launcher: c.LaunchService,
		Logger:   c.Logger,
	}
}

// NewCLIContainer wires the CLI to containers built from base once flags are parsed.
func NewCLIContainer(base Options) *cli.CLIContainer {
	return &cli.CLIContainer{
		Bootstrap: func(load config.LoadOptions) (*cli.Runtime, error) {
			opts := base
			opts.Load = load
			container, err := NewContainer(opts)
			if err != nil {
				return nil, err
			}
			return container.Runtime(), nil
		},
		Pick: cli.RunPicker,
		Interactive: func() bool {
			return logging.IsTerminalFile(os.Stdin) && logging.IsTerminalFile(os.Stdout)
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
