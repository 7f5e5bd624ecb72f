package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/pope-market/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore implementación en memoria del puerto KVStore (tests y STORE_DRIVER=memory).
type KVStore struct {
	mu     sync.RWMutex
	prefix string
	data   map[string][]byte
}

// NewKVStore construye el store vacío.
func NewKVStore(prefix string) *KVStore {
	return &KVStore{prefix: prefix, data: map[string][]byte{}}
}

// Get devuelve una copia del valor, o nil si no existe.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[s.prefix+key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set guarda una copia del valor.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.prefix+key] = append([]byte(nil), value...)
	return nil
}

// SetMany guarda todas las entradas bajo el mismo lock.
func (s *KVStore) SetMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.data[s.prefix+k] = append([]byte(nil), v...)
	}
	return nil
}

// Keys devuelve las claves físicas guardadas (con prefijo).
func (s *KVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Close no hace nada.
func (s *KVStore) Close() error { return nil }
