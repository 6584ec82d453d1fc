package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

// InstallResult describes how far an install run got.
type InstallResult struct {
	Launcher  string
	Stage     launcher.Stage
	Artifacts []launcher.Artifact
	Target    string
	Message   string
}

// InstallService drives a backend through the install lifecycle:
// check, generate, deploy, report. The first failing stage ends the run and
// its error is returned unchanged. Nothing written before the failure is
// rolled back.
type InstallService struct {
	log zerolog.Logger
}

// NewInstallService creates a new install service
func NewInstallService(log zerolog.Logger) *InstallService {
	return &InstallService{log: log}
}

// Install runs the four stages against backend in order.
func (s *InstallService) Install(ctx context.Context, backend ports.Backend) (InstallResult, error) {
	result := InstallResult{Launcher: backend.Name(), Stage: launcher.StageInit}
	log := s.log.With().Str("launcher", backend.Name()).Logger()

	if err := backend.BeforeCheck(); err != nil {
		log.Debug().Err(err).Stringer("stage", result.Stage).Msg("precondition check failed")
		return result, err
	}
	s.advance(&result, log)

	artifacts, err := backend.Gen(ctx)
	if err != nil {
		log.Debug().Err(err).Stringer("stage", result.Stage).Msg("generation failed")
		return result, err
	}
	result.Artifacts = artifacts
	s.advance(&result, log)

	target, err := backend.Deploy(ctx, artifacts)
	if err != nil {
		log.Debug().Err(err).Stringer("stage", result.Stage).Msg("deployment failed")
		return result, err
	}
	result.Target = target
	s.advance(&result, log)

	result.Message = backend.CompletionMessage(target)
	s.advance(&result, log)

	return result, nil
}

func (s *InstallService) advance(result *InstallResult, log zerolog.Logger) {
	result.Stage = result.Stage.Next()
	log.Debug().Stringer("stage", result.Stage).Msg("install stage reached")
}
