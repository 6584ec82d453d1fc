package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

// cargoManifest is the subset of `cargo read-manifest` output we use.
type cargoManifest struct {
	Name         string           `json:"name"`
	Version      string           `json:"version"`
	Description  *string          `json:"description"`
	Authors      []string         `json:"authors"`
	Metadata     *packageMetadata `json:"metadata"`
	ManifestPath string           `json:"manifest_path"`
}

// CargoReader reads metadata by shelling out to `cargo read-manifest`.
type CargoReader struct {
	runner ports.CommandRunner
	cargo  string
	log    zerolog.Logger
}

// NewCargoReader creates a reader that invokes the cargo binary at cargoPath
func NewCargoReader(runner ports.CommandRunner, cargoPath string, log zerolog.Logger) *CargoReader {
	if cargoPath == "" {
		cargoPath = "cargo"
	}
	return &CargoReader{runner: runner, cargo: cargoPath, log: log}
}

// Read implements ports.ManifestReader
func (r *CargoReader) Read(ctx context.Context, manifestPath, nameOverride string) (project.Metadata, error) {
	args := []string{"read-manifest"}
	if manifestPath != "" {
		args = append(args, "--manifest-path", manifestPath)
	}

	out, err := r.runner.Run(ctx, r.cargo, args...)
	if err != nil {
		return project.Metadata{}, err
	}
	r.log.Debug().Int("bytes", len(out)).Msg("read cargo manifest")

	return parseCargoJSON([]byte(out), nameOverride)
}

func parseCargoJSON(data []byte, nameOverride string) (project.Metadata, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return project.Metadata{}, fmt.Errorf("%w: cargo read-manifest produced no output", launcher.ErrManifestParse)
	}

	var raw cargoManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return project.Metadata{}, fmt.Errorf("%w: %w", launcher.ErrManifestParse, err)
	}
	if raw.Name == "" {
		return project.Metadata{}, fmt.Errorf("%w: manifest has no package name", launcher.ErrManifestParse)
	}

	dir := ""
	if raw.ManifestPath != "" {
		dir = filepath.Dir(raw.ManifestPath)
	}
	return toMetadata(raw.Name, raw.Version, raw.Description, raw.Authors, raw.Metadata, dir, nameOverride), nil
}

var _ ports.ManifestReader = (*CargoReader)(nil)
