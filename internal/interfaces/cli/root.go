package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cargo-launcher/cargo-launcher/internal/application/services"
	"github.com/cargo-launcher/cargo-launcher/internal/config"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// LaunchRunner installs a launcher plugin for a request
type LaunchRunner interface {
	Launch(ctx context.Context, req services.LaunchRequest) (services.InstallResult, error)
}

// Runtime is what commands use once configuration has been resolved
type Runtime struct {
	Launcher LaunchRunner
	Logger   zerolog.Logger
}

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	// Bootstrap builds the runtime from the resolved configuration options
	Bootstrap func(opts config.LoadOptions) (*Runtime, error)

	// Pick asks the user for a launcher when none was given
	Pick func() (launcher.Kind, error)

	// Interactive reports whether the user can answer the picker
	Interactive func() bool

	Stdout io.Writer
	Stderr io.Writer
}

// NewRootCommand RootCommand represents the base command when called without any subcommands.
// cargo runs external subcommands as `cargo-launcher launcher ...`, so the
// root is named after cargo and the real work lives in the launcher subcommand.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cargo",
		Short:         "Generate launcher plugins for Cargo projects",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("cargo-launcher version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is ./"+config.DefaultFileName+")")

	rootCmd.AddCommand(NewLauncherCommand(container))

	if container.Stdout != nil {
		rootCmd.SetOut(container.Stdout)
	}
	if container.Stderr != nil {
		rootCmd.SetErr(container.Stderr)
	}

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, container *CLIContainer, args []string) int {
	rootCmd := NewRootCommand(container)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stderr := container.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		fmt.Fprintf(stderr, "Error occurred: %v\n", err)
		return exitFailure
	}
	return exitSuccess
}
