package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/2beens/workouttracker/pkg"
)

var _ Backend = (*DiskBackend)(nil)

// DiskBackend stores every document as <root>/<name>.json. The root dir is
// created with the first write. Writes go to a temp file renamed over the old one.
type DiskBackend struct {
	rootPath string
	mutex    sync.RWMutex
}

func NewDiskBackend(rootPath string) (*DiskBackend, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	return &DiskBackend{
		rootPath: rootPath,
	}, nil
}

func (b *DiskBackend) path(name string) string {
	return filepath.Join(b.rootPath, name+".json")
}

func (b *DiskBackend) Get(_ context.Context, name string) ([]byte, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *DiskBackend) Put(_ context.Context, name string, data []byte) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if err := pkg.EnsureDir(b.rootPath); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.rootPath, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpPath)
	}()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, b.path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
