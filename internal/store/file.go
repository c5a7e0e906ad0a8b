package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists each collection as <dir>/<collection>.json. Writes go
// through a temp file and rename so readers never observe a torn payload.
type File struct {
	dir string
	mu  sync.Mutex
	bus *bus
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{dir: dir, bus: newBus()}, nil
}

func (f *File) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

func (f *File) Read(_ context.Context, collection string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := os.ReadFile(f.path(collection))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return raw, err
}

func (f *File) Write(_ context.Context, collection string, data []byte) error {
	f.mu.Lock()
	err := f.writeLocked(collection, data)
	f.mu.Unlock()
	if err != nil {
		return err
	}
	f.bus.publish(collection)
	return nil
}

func (f *File) writeLocked(collection string, data []byte) error {
	tmp := f.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(collection))
}

func (f *File) Subscribe(collection string) (<-chan struct{}, func()) {
	return f.bus.subscribe(collection)
}
