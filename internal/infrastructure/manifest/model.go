// Package manifest reads Cargo project metadata.
package manifest

import (
	"path/filepath"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
)

// launcherMetadata is the [package.metadata.launcher] table.
type launcherMetadata struct {
	Icon    string `json:"icon" toml:"icon"`
	Trigger string `json:"trigger" toml:"trigger"`
}

type packageMetadata struct {
	Launcher *launcherMetadata `json:"launcher" toml:"launcher"`
}

// toMetadata assembles project metadata, resolving a relative icon path
// against the manifest directory.
func toMetadata(name, version string, description *string, authors []string, meta *packageMetadata, manifestDir, nameOverride string) project.Metadata {
	m := project.Metadata{
		Name:        name,
		Version:     version,
		Authors:     append([]string(nil), authors...),
		ManifestDir: manifestDir,
	}
	if description != nil {
		m.Description = *description
	}
	if meta != nil && meta.Launcher != nil {
		m.Trigger = meta.Launcher.Trigger
		if icon := meta.Launcher.Icon; icon != "" {
			if !filepath.IsAbs(icon) && manifestDir != "" {
				icon = filepath.Join(manifestDir, icon)
			}
			m.IconPath = icon
		}
	}
	if nameOverride != "" {
		m.Name = nameOverride
	}
	return m
}
