package testfixtures

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

// MockCommandRunner is a testify mock of ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

// Run records the call and returns the configured output
func (m *MockCommandRunner) Run(ctx context.Context, program string, args ...string) (string, error) {
	called := m.Called(ctx, program, args)
	return called.String(0), called.Error(1)
}

// MockBackend is a testify mock of ports.Backend
type MockBackend struct {
	mock.Mock
}

// Name returns the configured launcher name
func (m *MockBackend) Name() string {
	return m.Called().String(0)
}

// BeforeCheck records the call and returns the configured error
func (m *MockBackend) BeforeCheck() error {
	return m.Called().Error(0)
}

// Gen records the call and returns the configured artifacts
func (m *MockBackend) Gen(ctx context.Context) ([]launcher.Artifact, error) {
	called := m.Called(ctx)
	artifacts, _ := called.Get(0).([]launcher.Artifact)
	return artifacts, called.Error(1)
}

// Deploy records the call and returns the configured target
func (m *MockBackend) Deploy(ctx context.Context, artifacts []launcher.Artifact) (string, error) {
	called := m.Called(ctx, artifacts)
	return called.String(0), called.Error(1)
}

// CompletionMessage returns the configured message
func (m *MockBackend) CompletionMessage(target string) string {
	return m.Called(target).String(0)
}

var (
	_ ports.CommandRunner = (*MockCommandRunner)(nil)
	_ ports.Backend       = (*MockBackend)(nil)
)
