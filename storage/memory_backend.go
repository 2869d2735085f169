package storage

import (
	"bytes"
	"sync"
)

// InMemoryBackend implements Backend with a map (for testing and -nosave runs)
type InMemoryBackend struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewInMemoryBackend creates an empty in-memory backend
func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{items: make(map[string][]byte)}
}

func (b *InMemoryBackend) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.items[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (b *InMemoryBackend) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	b.items[key] = bytes.Clone(value)
	b.mu.Unlock()
	return nil
}

func (b *InMemoryBackend) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	delete(b.items, key)
	b.mu.Unlock()
	return nil
}
