package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const stagingDir = ".staging"

// LocalStorage keeps photo files on a content directory tree under
// baseDir, e.g. uploads/events/3/1717171717-ab12cd34.jpg. Staged files
// live under baseDir/.staging and reach their final path with a rename,
// so readers never observe partial writes.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, stagingDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (s *LocalStorage) Stage(ctx context.Context, key string, r io.Reader, size int64) (StagedFile, error) {
	stagePath := filepath.Join(s.baseDir, stagingDir, uuid.NewString())

	f, err := os.Create(stagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(stagePath)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(stagePath)
		return nil, fmt.Errorf("failed to close staged file: %w", err)
	}

	return &localStaged{
		stagePath: stagePath,
		finalPath: filepath.Join(s.baseDir, filepath.FromSlash(key)),
	}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
}

type localStaged struct {
	stagePath string
	finalPath string
}

func (f *localStaged) Commit(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(f.finalPath), 0o755); err != nil {
		return fmt.Errorf("failed to create event directory: %w", err)
	}
	if err := os.Rename(f.stagePath, f.finalPath); err != nil {
		return fmt.Errorf("failed to move staged file into place: %w", err)
	}
	return nil
}

func (f *localStaged) Discard() error {
	err := os.Remove(f.stagePath)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
