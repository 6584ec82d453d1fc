package launcher

import (
	"fmt"
	"path/filepath"
)

// Artifact is a file produced by a backend's generation stage.
type Artifact struct {
	Path string
}

// NewArtifact creates an Artifact for the given path
func NewArtifact(path string) Artifact {
	return Artifact{Path: path}
}

// FileName returns the final path component used when deploying the artifact.
func (a Artifact) FileName() (string, error) {
	if a.Path == "" {
		return "", fmt.Errorf("%w: artifact has no path", ErrNotFound)
	}
	name := filepath.Base(a.Path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: no file name in artifact path %q", ErrNotFound, a.Path)
	}
	return name, nil
}

// String implements the Stringer interface
func (a Artifact) String() string {
	return a.Path
}

// Paths returns the filesystem paths of the given artifacts.
func Paths(artifacts []Artifact) []string {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}
