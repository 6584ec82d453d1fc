package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/fsutil"
)

// DefaultManifestName is the manifest file looked up when no path is given.
const DefaultManifestName = "Cargo.toml"

type cargoToml struct {
	Package *struct {
		Name        string           `toml:"name"`
		Version     any              `toml:"version"`
		Description any              `toml:"description"`
		Authors     any              `toml:"authors"`
		Metadata    *packageMetadata `toml:"metadata"`
	} `toml:"package"`
}

// TOMLReader parses Cargo.toml directly, without a cargo toolchain.
// Fields inherited from a workspace are not resolved and are reported as
// parse errors.
type TOMLReader struct {
	fs afero.Fs
}

// NewTOMLReader creates a reader over fs
func NewTOMLReader(fs afero.Fs) *TOMLReader {
	return &TOMLReader{fs: fs}
}

// Read implements ports.ManifestReader
func (r *TOMLReader) Read(_ context.Context, manifestPath, nameOverride string) (project.Metadata, error) {
	if manifestPath == "" {
		manifestPath = DefaultManifestName
	}

	data, err := fsutil.ReadFile(r.fs, manifestPath)
	if err != nil {
		return project.Metadata{}, err
	}

	var raw cargoToml
	if err := toml.Unmarshal(data, &raw); err != nil {
		return project.Metadata{}, fmt.Errorf("%w: %s: %w", launcher.ErrManifestParse, manifestPath, err)
	}
	if raw.Package == nil || raw.Package.Name == "" {
		return project.Metadata{}, fmt.Errorf("%w: %s has no [package] name", launcher.ErrManifestParse, manifestPath)
	}
	pkg := raw.Package

	version, err := plainString("version", pkg.Version)
	if err != nil {
		return project.Metadata{}, err
	}
	var description *string
	if pkg.Description != nil {
		d, err := plainString("description", pkg.Description)
		if err != nil {
			return project.Metadata{}, err
		}
		description = &d
	}
	authors, err := stringList("authors", pkg.Authors)
	if err != nil {
		return project.Metadata{}, err
	}

	dir, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		dir = filepath.Dir(manifestPath)
	}
	return toMetadata(pkg.Name, version, description, authors, pkg.Metadata, dir, nameOverride), nil
}

func plainString(field string, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case map[string]any:
		if _, ok := val["workspace"]; ok {
			return "", fmt.Errorf("%w: package.%s is inherited from the workspace; use the cargo manifest reader", launcher.ErrManifestParse, field)
		}
	}
	return "", fmt.Errorf("%w: package.%s must be a string", launcher.ErrManifestParse, field)
}

func stringList(field string, v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: package.%s must contain only strings", launcher.ErrManifestParse, field)
			}
			out = append(out, s)
		}
		return out, nil
	case map[string]any:
		if _, ok := val["workspace"]; ok {
			return nil, fmt.Errorf("%w: package.%s is inherited from the workspace; use the cargo manifest reader", launcher.ErrManifestParse, field)
		}
	}
	return nil, fmt.Errorf("%w: package.%s must be an array of strings", launcher.ErrManifestParse, field)
}

var _ ports.ManifestReader = (*TOMLReader)(nil)
