package manifest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/testfixtures"
)

const dummyCargoJSON = `{
  "name": "test-cargo",
  "version": "0.1.0",
  "id": "test-cargo 0.1.0 (path+file:///work/test-cargo)",
  "license": "MIT",
  "description": "Test description",
  "authors": ["mozilla", "watawuwu"],
  "metadata": {"launcher": {"icon": "assets/icon.png", "trigger": "tc"}},
  "manifest_path": "/work/test-cargo/Cargo.toml"
}`

const dummyCargoToml = `
[package]
name        = "test-cargo"
edition     = "2018"
version     = "0.1.0"
authors     = ["mozilla", "watawuwu"]
license     = "MIT"
description = "Test description"

[package.metadata.launcher]
icon    = "assets/icon.png"
trigger = "tc"
`

func TestCargoReader_Read(t *testing.T) {
	runner := &testfixtures.MockCommandRunner{}
	runner.On("Run", mock.Anything, "cargo", []string{"read-manifest", "--manifest-path", "/work/test-cargo/Cargo.toml"}).
		Return(dummyCargoJSON, nil)

	r := NewCargoReader(runner, "", zerolog.Nop())
	meta, err := r.Read(context.Background(), "/work/test-cargo/Cargo.toml", "")

	require.NoError(t, err)
	assert.Equal(t, "test-cargo", meta.Name)
	assert.Equal(t, "0.1.0", meta.Version)
	assert.Equal(t, "Test description", meta.Description)
	assert.Equal(t, "mozilla, watawuwu", meta.Author())
	assert.Equal(t, filepath.Join("/work/test-cargo", "assets/icon.png"), meta.IconPath)
	assert.Equal(t, "tc", meta.Trigger)
	runner.AssertExpectations(t)
}

func TestCargoReader_NameOverride(t *testing.T) {
	runner := &testfixtures.MockCommandRunner{}
	runner.On("Run", mock.Anything, "/opt/cargo", []string{"read-manifest"}).Return(dummyCargoJSON, nil)

	r := NewCargoReader(runner, "/opt/cargo", zerolog.Nop())
	meta, err := r.Read(context.Background(), "", "test_bin")

	require.NoError(t, err)
	assert.Equal(t, "test_bin", meta.Name)
	runner.AssertExpectations(t)
}

func TestCargoReader_Errors(t *testing.T) {
	spawnErr := errors.Join(launcher.ErrProcessSpawn, errors.New("exec: cargo: not found"))

	tests := []struct {
		name      string
		output    string
		runErr    error
		expectErr error
	}{
		{name: "spawn failure", runErr: spawnErr, expectErr: launcher.ErrProcessSpawn},
		{name: "empty output", output: "  \n", expectErr: launcher.ErrManifestParse},
		{name: "malformed json", output: "{not json", expectErr: launcher.ErrManifestParse},
		{name: "missing name", output: `{"version":"1.0.0"}`, expectErr: launcher.ErrManifestParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &testfixtures.MockCommandRunner{}
			runner.On("Run", mock.Anything, "cargo", mock.Anything).Return(tt.output, tt.runErr)

			_, err := NewCargoReader(runner, "cargo", zerolog.Nop()).Read(context.Background(), "", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestParseCargoJSON_OptionalFields(t *testing.T) {
	meta, err := parseCargoJSON([]byte(`{"name":"foo","version":"0.1.0","description":null,"authors":[],"metadata":null}`), "")

	require.NoError(t, err)
	assert.Equal(t, "", meta.Description)
	assert.Equal(t, "", meta.Author())
	assert.False(t, meta.HasIconOverride())
	assert.Equal(t, "foo", meta.EffectiveTrigger())
}

func TestTOMLReader_Read(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/test-cargo/Cargo.toml", []byte(dummyCargoToml), 0o644))

	meta, err := NewTOMLReader(fs).Read(context.Background(), "/work/test-cargo/Cargo.toml", "")

	require.NoError(t, err)
	assert.Equal(t, "test-cargo", meta.Name)
	assert.Equal(t, "0.1.0", meta.Version)
	assert.Equal(t, "Test description", meta.Description)
	assert.Equal(t, []string{"mozilla", "watawuwu"}, meta.Authors)
	assert.Equal(t, filepath.Join("/work/test-cargo", "assets/icon.png"), meta.IconPath)
	assert.Equal(t, "tc", meta.Trigger)
}

func TestReaders_AgreeOnTheSameManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/test-cargo/Cargo.toml", []byte(dummyCargoToml), 0o644))

	runner := &testfixtures.MockCommandRunner{}
	runner.On("Run", mock.Anything, "cargo", mock.Anything).Return(dummyCargoJSON, nil)

	fromToml, err := NewTOMLReader(fs).Read(context.Background(), "/work/test-cargo/Cargo.toml", "renamed")
	require.NoError(t, err)
	fromCargo, err := NewCargoReader(runner, "cargo", zerolog.Nop()).Read(context.Background(), "/work/test-cargo/Cargo.toml", "renamed")
	require.NoError(t, err)

	assert.Equal(t, fromCargo, fromToml)
}

func TestTOMLReader_Errors(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		expectErr error
	}{
		{name: "not toml", contents: "[package\nname = ", expectErr: launcher.ErrManifestParse},
		{name: "no package", contents: "[workspace]\nmembers = []\n", expectErr: launcher.ErrManifestParse},
		{
			name:      "workspace version",
			contents:  "[package]\nname = \"foo\"\nversion.workspace = true\n",
			expectErr: launcher.ErrManifestParse,
		},
		{
			name:      "workspace authors",
			contents:  "[package]\nname = \"foo\"\nversion = \"1.0.0\"\nauthors.workspace = true\n",
			expectErr: launcher.ErrManifestParse,
		},
		{
			name:      "non string author",
			contents:  "[package]\nname = \"foo\"\nversion = \"1.0.0\"\nauthors = [1]\n",
			expectErr: launcher.ErrManifestParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "Cargo.toml", []byte(tt.contents), 0o644))

			_, err := NewTOMLReader(fs).Read(context.Background(), "", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestTOMLReader_MissingFile(t *testing.T) {
	_, err := NewTOMLReader(afero.NewMemMapFs()).Read(context.Background(), "/nowhere/Cargo.toml", "")
	assert.ErrorIs(t, err, launcher.ErrIO)
}
