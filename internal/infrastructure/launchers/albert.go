package launchers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

const (
	albertModuleFile = "__init__.py"
	albertModulesDir = ".local/share/albert/org.albert.extension.python/modules"
)

const albertHelp = `
Install completed!!
Please check the checkbox of the python extension list and activate the setting.

Installed path: `

// Albert installs a Python extension module for the Albert launcher on Linux.
type Albert struct {
	base
}

// NewAlbert creates the Albert backend
func NewAlbert(meta project.Metadata, conf *LaunchConfig, deps Deps) *Albert {
	return &Albert{base: newBase(launcher.KindAlbert, meta, conf, deps)}
}

// Name implements ports.Backend
func (a *Albert) Name() string {
	return launcher.KindAlbert.String()
}

// BeforeCheck implements ports.Backend
func (a *Albert) BeforeCheck() error {
	return a.requirePlatform(launcher.KindAlbert, launcher.PlatformLinux)
}

// Gen writes __init__.py and icon.png.
func (a *Albert) Gen(_ context.Context) ([]launcher.Artifact, error) {
	if err := a.conf.EnsureWorkingDirectory(); err != nil {
		return nil, err
	}

	module, err := a.render(albertModuleFile, albertModule, map[string]string{
		"prettyname": a.meta.Name,
		"version":    a.meta.Version,
		"trigger":    a.meta.EffectiveTrigger(),
		"author":     a.meta.Author(),
	})
	if err != nil {
		return nil, err
	}

	icon, err := a.writeIcon()
	if err != nil {
		return nil, err
	}

	return []launcher.Artifact{module, icon}, nil
}

// Deploy copies the module into Albert's python modules directory.
func (a *Albert) Deploy(_ context.Context, artifacts []launcher.Artifact) (string, error) {
	target, err := a.ModuleDir()
	if err != nil {
		return "", err
	}
	if err := a.installer.Install(target, artifacts); err != nil {
		return "", err
	}
	return target, nil
}

// CompletionMessage implements ports.Backend
func (a *Albert) CompletionMessage(target string) string {
	return albertHelp + target
}

// ModuleDir returns the module directory for the project under the user's home.
func (a *Albert) ModuleDir() (string, error) {
	home, err := a.deps.Env.HomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: home directory: %v", launcher.ErrNotFound, err)
	}
	return filepath.Join(home, filepath.FromSlash(albertModulesDir), a.meta.Name), nil
}

var _ ports.Backend = (*Albert)(nil)
