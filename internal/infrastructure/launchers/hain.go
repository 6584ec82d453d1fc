package launchers

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

const (
	hainIndexFile   = "index.js"
	hainPackageFile = "package.json"
	hainUserDir     = "hain-user"
	hainPluginsDir  = "devplugins"
)

const hainHelp = `
Install completed!!
Restart of the hain is required.

Installed path: `

// Hain stages a node plugin and copies it into hain's devplugins directory.
type Hain struct {
	base
}

// NewHain creates the Hain backend
func NewHain(meta project.Metadata, conf *LaunchConfig, deps Deps) *Hain {
	return &Hain{base: newBase(launcher.KindHain, meta, conf, deps)}
}

// Name implements ports.Backend
func (h *Hain) Name() string {
	return launcher.KindHain.String()
}

// BeforeCheck implements ports.Backend. Hain runs everywhere.
func (h *Hain) BeforeCheck() error {
	return nil
}

// Gen writes index.js, package.json and icon.png.
func (h *Hain) Gen(_ context.Context) ([]launcher.Artifact, error) {
	if err := h.conf.EnsureWorkingDirectory(); err != nil {
		return nil, err
	}

	index, err := h.render(hainIndexFile, hainIndexJS, map[string]string{
		"name": h.meta.Name,
	})
	if err != nil {
		return nil, err
	}

	pkg, err := h.render(hainPackageFile, hainPackageJSON, map[string]string{
		"name":        jsonEscape(h.meta.Name),
		"version":     jsonEscape(h.meta.Version),
		"description": jsonEscape(h.meta.Description),
		"author":      jsonEscape(h.meta.Author()),
	})
	if err != nil {
		return nil, err
	}

	icon, err := h.writeIcon()
	if err != nil {
		return nil, err
	}

	return []launcher.Artifact{index, pkg, icon}, nil
}

// Deploy copies the artifacts into the plugin directory.
func (h *Hain) Deploy(_ context.Context, artifacts []launcher.Artifact) (string, error) {
	target, err := h.PluginDir()
	if err != nil {
		return "", err
	}
	if err := h.installer.Install(target, artifacts); err != nil {
		return "", err
	}
	return target, nil
}

// CompletionMessage implements ports.Backend
func (h *Hain) CompletionMessage(target string) string {
	return hainHelp + target
}

// PluginDir returns hain-user/devplugins/hain-plugin-<name> under the
// platform's per-user application data directory.
func (h *Hain) PluginDir() (string, error) {
	root, err := h.userDataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, hainUserDir, hainPluginsDir, h.pluginName()), nil
}

func (h *Hain) userDataRoot() (string, error) {
	env := h.deps.Env
	switch env.OS {
	case launcher.PlatformMacOS:
		home, err := env.HomeDir()
		if err != nil || home == "" {
			return "", fmt.Errorf("%w: home directory: %v", launcher.ErrNotFound, err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	case launcher.PlatformWindows:
		if local := env.Getenv("LOCALAPPDATA"); local != "" {
			return local, nil
		}
		if profile := env.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Local Settings", "Application Data"), nil
		}
		return "", fmt.Errorf("%w: neither LOCALAPPDATA nor USERPROFILE is set", launcher.ErrNotFound)

	default:
		if xdgHome := env.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
			return xdgHome, nil
		}
		dir, err := env.ConfigDir()
		if err != nil || dir == "" {
			return "", fmt.Errorf("%w: config directory: %v", launcher.ErrNotFound, err)
		}
		return dir, nil
	}
}

func (h *Hain) pluginName() string {
	return "hain-plugin-" + h.meta.Name
}

// jsonEscape returns s escaped for use inside a JSON string literal.
func jsonEscape(s string) string {
	quoted, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return strings.TrimSuffix(strings.TrimPrefix(string(quoted), `"`), `"`)
}

var _ ports.Backend = (*Hain)(nil)
