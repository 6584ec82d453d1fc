package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargo-launcher/cargo-launcher/internal/application/services"
	"github.com/cargo-launcher/cargo-launcher/internal/config"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

type fakeLauncher struct {
	requests []services.LaunchRequest
	result   services.InstallResult
	err      error
}

func (f *fakeLauncher) Launch(_ context.Context, req services.LaunchRequest) (services.InstallResult, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

type harness struct {
	container *CLIContainer
	launcher  *fakeLauncher
	loads     []config.LoadOptions
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

func newHarness() *harness {
	h := &harness{
		launcher: &fakeLauncher{result: services.InstallResult{Message: "\nInstall completed!!\nInstalled path: /x"}},
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	h.container = &CLIContainer{
		Bootstrap: func(opts config.LoadOptions) (*Runtime, error) {
			h.loads = append(h.loads, opts)
			return &Runtime{Launcher: h.launcher, Logger: zerolog.Nop()}, nil
		},
		Interactive: func() bool { return false },
		Stdout:      h.stdout,
		Stderr:      h.stderr,
	}
	return h
}

func (h *harness) run(args ...string) int {
	return Run(context.Background(), h.container, args)
}

func TestRun_Success(t *testing.T) {
	h := newHarness()

	code := h.run("launcher", "hain")
	assert.Equal(t, 0, code)
	assert.Empty(t, h.stderr.String())
	assert.Contains(t, h.stdout.String(), "Install completed!!")
	assert.Contains(t, h.stdout.String(), "Installed path: /x")

	require.Len(t, h.launcher.requests, 1)
	assert.Equal(t, services.LaunchRequest{Kind: launcher.KindHain}, h.launcher.requests[0])
}

func TestRun_FlagsReachTheRequest(t *testing.T) {
	h := newHarness()

	code := h.run("launcher", "ALBERT",
		"-b", "bar", "-i", "assets/x.png", "--manifest-path", "sub/Cargo.toml",
		"--trigger", "b", "--work-dir", "out", "--debug", "--config", "cl.toml")
	require.Equal(t, 0, code, h.stderr.String())

	assert.Equal(t, services.LaunchRequest{
		Kind:            launcher.KindAlbert,
		ManifestPath:    "sub/Cargo.toml",
		NameOverride:    "bar",
		IconOverride:    "assets/x.png",
		TriggerOverride: "b",
	}, h.launcher.requests[0])

	require.Len(t, h.loads, 1)
	assert.Equal(t, "cl.toml", h.loads[0].Path)
	assert.Equal(t, config.Overrides{WorkDir: "out", Debug: true}, h.loads[0].Overrides)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		setup   func(h *harness)
		wantErr string
	}{
		{
			name:    "unknown launcher",
			args:    []string{"launcher", "spotlight"},
			wantErr: "unknown launcher",
		},
		{
			name:    "too many arguments",
			args:    []string{"launcher", "hain", "albert"},
			wantErr: "accepts at most 1 arg",
		},
		{
			name:    "missing launcher without a terminal",
			args:    []string{"launcher"},
			wantErr: "specify one of alfred, hain, albert",
		},
		{
			name: "install failure",
			args: []string{"launcher", "albert"},
			setup: func(h *harness) {
				h.launcher.err = fmt.Errorf("%w: Albert is supported only on Linux", launcher.ErrUnsupportedPlatform)
			},
			wantErr: "Albert is supported only on Linux",
		},
		{
			name: "bootstrap failure",
			args: []string{"launcher", "hain"},
			setup: func(h *harness) {
				h.container.Bootstrap = func(config.LoadOptions) (*Runtime, error) {
					return nil, errors.New("bad config")
				}
			},
			wantErr: "failed to initialize: bad config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			if tt.setup != nil {
				tt.setup(h)
			}

			code := h.run(tt.args...)
			assert.Equal(t, 1, code)
			assert.True(t, strings.HasPrefix(h.stderr.String(), "Error occurred: "), h.stderr.String())
			assert.Contains(t, h.stderr.String(), tt.wantErr)
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestRun_PickerOnTerminal(t *testing.T) {
	h := newHarness()
	h.container.Interactive = func() bool { return true }
	h.container.Pick = func() (launcher.Kind, error) { return launcher.KindAlfred, nil }

	require.Equal(t, 0, h.run("launcher"))
	require.Len(t, h.launcher.requests, 1)
	assert.Equal(t, launcher.KindAlfred, h.launcher.requests[0].Kind)
}

func TestRun_PickerCancelled(t *testing.T) {
	h := newHarness()
	h.container.Interactive = func() bool { return true }
	h.container.Pick = func() (launcher.Kind, error) { return 0, errPickerCancelled }

	assert.Equal(t, 1, h.run("launcher"))
	assert.Contains(t, h.stderr.String(), "launcher selection cancelled")
	assert.Empty(t, h.launcher.requests)
}

func TestRun_Version(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"binary", []string{"--version"}},
		{"through cargo", []string{"launcher", "--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()

			assert.Equal(t, 0, h.run(tt.args...), h.stderr.String())
			assert.Contains(t, h.stdout.String(), "cargo-launcher version "+Version)
			assert.Empty(t, h.launcher.requests)
		})
	}
}

func TestRenderCompletion_KeepsEveryLine(t *testing.T) {
	out := renderCompletion("\nInstall completed!!\nRestart of the hain is required.\n\nInstalled path: /x")
	for _, want := range []string{"Install completed!!", "Restart of the hain is required.", "Installed path: /x"} {
		assert.Contains(t, out, want)
	}
	assert.Len(t, strings.Split(out, "\n"), 4)
}
