package launchers

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/fsutil"
)

// FileSystemInstaller copies staged artifacts into a launcher's plugin directory
type FileSystemInstaller struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewFileSystemInstaller creates a new filesystem plugin installer
func NewFileSystemInstaller(fs afero.Fs, log zerolog.Logger) *FileSystemInstaller {
	return &FileSystemInstaller{fs: fs, log: log}
}

// Install creates targetDir and copies each artifact into it by file name,
// overwriting existing files. Files copied before a failure are left in place.
func (i *FileSystemInstaller) Install(targetDir string, artifacts []launcher.Artifact) error {
	if err := fsutil.MkdirAll(i.fs, targetDir); err != nil {
		return err
	}

	for _, artifact := range artifacts {
		name, err := artifact.FileName()
		if err != nil {
			return err
		}
		sink := filepath.Join(targetDir, name)

		i.log.Debug().Str("path", artifact.Path).Str("sink", sink).Msg("copying artifact")

		if err := fsutil.CopyFile(i.fs, artifact.Path, sink); err != nil {
			return err
		}
	}

	return nil
}
