// Package fs reads the lockfile and writes generated documents.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.FileStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadLockfile returns the content of the lockfile at path.
func (s *Store) ReadLockfile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, iofs.ErrNotExist):
		return "", zerr.With(zerr.Wrap(err, domain.ErrLockfileNotFound.Error()), "path", path)
	case errors.Is(err, iofs.ErrPermission):
		return "", zerr.With(zerr.Wrap(err, domain.ErrLockfilePermission.Error()), "path", path)
	default:
		return "", zerr.With(zerr.Wrap(err, domain.ErrLockfileRead.Error()), "path", path)
	}
}

// WriteDocument replaces the file at path with data.
// Readers never observe a partially written document.
func (s *Store) WriteDocument(path string, data []byte) error {
	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWrite.Error()), "path", path)
	}
	return nil
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.OutputDirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.OutputFilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
