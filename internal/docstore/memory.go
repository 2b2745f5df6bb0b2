package docstore

import (
	"context"
	"sync"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps documents in process memory, used in tests and for throwaway runs.
type MemoryBackend struct {
	mutex sync.RWMutex
	docs  map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		docs: make(map[string][]byte),
	}
}

func (b *MemoryBackend) Get(_ context.Context, name string) ([]byte, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	data, ok := b.docs[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return append([]byte(nil), data...), nil
}

func (b *MemoryBackend) Put(_ context.Context, name string, data []byte) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.docs[name] = append([]byte(nil), data...)
	return nil
}
