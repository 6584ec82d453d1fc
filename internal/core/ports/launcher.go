package ports

import (
	"context"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
)

// Backend is a launcher-specific implementation of the install lifecycle.
type Backend interface {
	// Name returns the launcher the backend installs into
	Name() string

	// BeforeCheck validates platform and other preconditions
	BeforeCheck() error

	// Gen renders the plugin artifacts into the working directory
	Gen(ctx context.Context) ([]launcher.Artifact, error)

	// Deploy installs the artifacts and returns the deployment target
	Deploy(ctx context.Context, artifacts []launcher.Artifact) (string, error)

	// CompletionMessage returns the text shown after a successful install
	CompletionMessage(target string) string
}

// BackendSelector constructs the backend for a launcher kind.
type BackendSelector interface {
	Select(kind launcher.Kind, meta project.Metadata) (Backend, error)
}
