package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

// LaunchRequest is a single `cargo launcher` invocation.
type LaunchRequest struct {
	Kind            launcher.Kind
	ManifestPath    string
	NameOverride    string
	IconOverride    string
	TriggerOverride string
}

// LaunchService reads the project metadata, picks the backend and installs it.
type LaunchService struct {
	manifests ports.ManifestReader
	selector  ports.BackendSelector
	installer *InstallService
	log       zerolog.Logger
}

// NewLaunchService creates a new launch service
func NewLaunchService(manifests ports.ManifestReader, selector ports.BackendSelector, installer *InstallService, log zerolog.Logger) *LaunchService {
	return &LaunchService{
		manifests: manifests,
		selector:  selector,
		installer: installer,
		log:       log,
	}
}

// Launch generates and deploys the plugin described by req.
func (s *LaunchService) Launch(ctx context.Context, req LaunchRequest) (InstallResult, error) {
	meta, err := s.Metadata(ctx, req)
	if err != nil {
		return InstallResult{Launcher: req.Kind.String()}, err
	}

	backend, err := s.selector.Select(req.Kind, meta)
	if err != nil {
		return InstallResult{Launcher: req.Kind.String()}, err
	}

	s.log.Info().
		Str("launcher", backend.Name()).
		Str("project", meta.Name).
		Str("version", meta.Version).
		Msg("installing launcher plugin")

	return s.installer.Install(ctx, backend)
}

// Metadata reads the manifest and applies the request's overrides.
func (s *LaunchService) Metadata(ctx context.Context, req LaunchRequest) (project.Metadata, error) {
	meta, err := s.manifests.Read(ctx, req.ManifestPath, req.NameOverride)
	if err != nil {
		return project.Metadata{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	if req.IconOverride != "" {
		meta = meta.WithIcon(req.IconOverride)
	}
	if req.TriggerOverride != "" {
		meta = meta.WithTrigger(req.TriggerOverride)
	}
	if err := meta.Validate(); err != nil {
		return project.Metadata{}, err
	}
	s.log.Debug().Str("name", meta.Name).Str("icon", meta.IconPath).Msg("resolved project metadata")
	return meta, nil
}
