package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cargo-launcher/cargo-launcher/internal/application/services"
	"github.com/cargo-launcher/cargo-launcher/internal/config"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

// LauncherFlags holds command-line flags for the launcher command
type LauncherFlags struct {
	BinName      string
	IconPath     string
	ManifestPath string
	Trigger      string
	WorkDir      string
}

// NewLauncherCommand creates the launcher command
func NewLauncherCommand(container *CLIContainer) *cobra.Command {
	flags := &LauncherFlags{}

	cmd := &cobra.Command{
		Use:       "launcher [" + strings.Join(launcher.KindNames(), "|") + "]",
		Short:     "Generate and install a launcher plugin for this project",
		ValidArgs: launcher.KindNames(),
		Long: `Render a plugin for Alfred, Hain or Albert from the project's Cargo manifest
and install it where the launcher picks it up.

Examples:
  cargo launcher alfred                 # macOS, imports a .alfredworkflow
  cargo launcher hain                   # any platform, hain devplugins directory
  cargo launcher albert --trigger url   # Linux, Albert python extension
  cargo launcher hain -b mytool -i assets/icon.png`,
		Args: cobra.MaximumNArgs(1),
		// cargo invokes the binary as `cargo-launcher launcher ...`
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd, container, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.BinName, "bin", "b", "", "Binary name to use instead of the package name")
	cmd.Flags().StringVarP(&flags.IconPath, "icon", "i", "", "Icon (PNG) to bundle instead of the default artwork")
	cmd.Flags().StringVar(&flags.ManifestPath, "manifest-path", "", "Path to Cargo.toml")
	cmd.Flags().StringVar(&flags.Trigger, "trigger", "", "Albert query trigger (default is the binary name)")
	cmd.Flags().StringVar(&flags.WorkDir, "work-dir", "", "Directory used to stage generated files")

	return cmd
}

func runLauncher(cmd *cobra.Command, container *CLIContainer, flags *LauncherFlags, args []string) error {
	kind, err := resolveKind(container, args)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	debugMode, _ := cmd.Flags().GetBool("debug")

	rt, err := container.Bootstrap(config.LoadOptions{
		Path: configPath,
		Overrides: config.Overrides{
			WorkDir: flags.WorkDir,
			Debug:   debugMode,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rt.Logger.Debug().Str("launcher", kind.String()).Interface("flags", flags).Msg("launcher command")

	result, err := rt.Launcher.Launch(cmd.Context(), services.LaunchRequest{
		Kind:            kind,
		ManifestPath:    flags.ManifestPath,
		NameOverride:    flags.BinName,
		IconOverride:    flags.IconPath,
		TriggerOverride: flags.Trigger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderCompletion(result.Message))
	return nil
}

// resolveKind takes the launcher from the argument or, on a terminal, from the picker.
func resolveKind(container *CLIContainer, args []string) (launcher.Kind, error) {
	if len(args) == 1 {
		return launcher.ParseKind(args[0])
	}
	if container.Pick == nil || container.Interactive == nil || !container.Interactive() {
		return 0, fmt.Errorf("%w: specify one of %s", launcher.ErrUnknownLauncher, strings.Join(launcher.KindNames(), ", "))
	}
	return container.Pick()
}
