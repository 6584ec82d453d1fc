package launchers

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/fsutil"
)

// DefaultWorkDir is where artifacts are staged before deployment.
const DefaultWorkDir = "target/launcher"

// LaunchConfig is shared by every backend of a run: the staging directory
// and the icon used when the project does not provide one.
type LaunchConfig struct {
	WorkDir      string
	FallbackIcon []byte

	fs afero.Fs
}

// NewLaunchConfig creates a LaunchConfig staging into workDir on fs
func NewLaunchConfig(fs afero.Fs, workDir string, fallbackIcon []byte) *LaunchConfig {
	if workDir == "" {
		workDir = DefaultWorkDir
	}
	if fallbackIcon == nil {
		fallbackIcon = DefaultIcon
	}
	return &LaunchConfig{WorkDir: workDir, FallbackIcon: fallbackIcon, fs: fs}
}

// ResolveIcon returns the bytes of the metadata's icon override, or the
// fallback icon when none is configured. An override that cannot be read is
// an error, not a reason to fall back.
func (c *LaunchConfig) ResolveIcon(meta project.Metadata) ([]byte, error) {
	if !meta.HasIconOverride() {
		return append([]byte(nil), c.FallbackIcon...), nil
	}
	data, err := fsutil.ReadFile(c.fs, meta.IconPath)
	if err != nil {
		return nil, fmt.Errorf("%w: icon %s: %w", launcher.ErrNotFound, meta.IconPath, err)
	}
	return data, nil
}

// EnsureWorkingDirectory creates the staging directory and its parents.
func (c *LaunchConfig) EnsureWorkingDirectory() error {
	return fsutil.MkdirAll(c.fs, c.WorkDir)
}

// Fs returns the filesystem artifacts are staged on
func (c *LaunchConfig) Fs() afero.Fs {
	return c.fs
}
