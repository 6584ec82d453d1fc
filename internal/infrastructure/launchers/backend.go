package launchers

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/fsutil"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/platform"
)

// Deps are the collaborators shared by all backends.
type Deps struct {
	Env      platform.Environment
	Renderer ports.TemplateRenderer
	Runner   ports.CommandRunner
	Logger   zerolog.Logger
	// OpenCommand opens a file with the platform's default application.
	OpenCommand string
}

// base holds what every backend is bound to for its lifetime.
type base struct {
	meta      project.Metadata
	conf      *LaunchConfig
	deps      Deps
	installer *FileSystemInstaller
	log       zerolog.Logger
}

func newBase(kind launcher.Kind, meta project.Metadata, conf *LaunchConfig, deps Deps) base {
	log := deps.Logger.With().Str("launcher", kind.String()).Logger()
	return base{
		meta:      meta,
		conf:      conf,
		deps:      deps,
		installer: NewFileSystemInstaller(conf.Fs(), log),
		log:       log,
	}
}

func (b base) fs() afero.Fs {
	return b.conf.Fs()
}

// requirePlatform fails unless the environment runs on want.
func (b base) requirePlatform(kind launcher.Kind, want launcher.Platform) error {
	if b.deps.Env.Supports(want) {
		return nil
	}
	return fmt.Errorf("%w: %s is supported only on %s (running on %s)",
		launcher.ErrUnsupportedPlatform, kind.Title(), want.DisplayName(), b.deps.Env.OS.DisplayName())
}

// stagePath returns the working directory path for a generated file.
func (b base) stagePath(name string) string {
	return filepath.Join(b.conf.WorkDir, name)
}

// render renders tpl and writes it to the working directory as name.
func (b base) render(name, tpl string, params map[string]string) (launcher.Artifact, error) {
	contents, err := b.deps.Renderer.Render(tpl, params)
	if err != nil {
		return launcher.Artifact{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	return b.write(name, []byte(contents))
}

func (b base) write(name string, contents []byte) (launcher.Artifact, error) {
	path := b.stagePath(name)
	if err := fsutil.WriteFile(b.fs(), path, contents); err != nil {
		return launcher.Artifact{}, err
	}
	b.log.Debug().Str("path", path).Int("bytes", len(contents)).Msg("generated artifact")
	return launcher.NewArtifact(path), nil
}

// writeIcon stages the resolved icon as icon.png.
func (b base) writeIcon() (launcher.Artifact, error) {
	icon, err := b.conf.ResolveIcon(b.meta)
	if err != nil {
		return launcher.Artifact{}, err
	}
	return b.write(iconFileName, icon)
}

const iconFileName = "icon.png"
