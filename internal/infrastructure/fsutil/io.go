// Package fsutil provides buffered file helpers over an afero filesystem.
package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// ReadFile reads the whole file at path through a buffered reader.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", launcher.ErrIO, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", launcher.ErrIO, path, err)
	}
	return data, nil
}

// WriteFile creates or truncates path and writes contents through a buffered writer.
func WriteFile(fs afero.Fs, path string, contents []byte) error {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", launcher.ErrIO, path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.Write(contents); err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to write %s: %w", launcher.ErrIO, path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: failed to flush %s: %w", launcher.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", launcher.ErrIO, path, err)
	}
	return nil
}

// CopyFile copies src to dst, replacing dst if it exists.
func CopyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", launcher.ErrIO, src, err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", launcher.ErrIO, dst, err)
	}

	if _, err := io.Copy(out, bufio.NewReader(in)); err != nil {
		out.Close()
		return fmt.Errorf("%w: failed to copy %s to %s: %w", launcher.ErrIO, src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", launcher.ErrIO, dst, err)
	}
	return nil
}

// MkdirAll creates dir and any missing parents. An existing directory is not an error;
// an existing file at dir is.
func MkdirAll(fs afero.Fs, dir string) error {
	if info, err := fs.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%w: %s exists and is not a directory", launcher.ErrIO, dir)
	}
	if err := fs.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %w", launcher.ErrIO, dir, err)
	}
	return nil
}
