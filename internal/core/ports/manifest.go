package ports

import (
	"context"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
)

// ManifestReader reads project metadata from a build manifest.
// An empty manifestPath means the manifest of the current directory;
// a non-empty nameOverride replaces the manifest's project name.
type ManifestReader interface {
	Read(ctx context.Context, manifestPath, nameOverride string) (project.Metadata, error)
}
