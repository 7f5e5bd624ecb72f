// Package filestore persiste cada clave como un archivo JSON en un directorio:
// el equivalente en disco del local storage del navegador.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/pope-market/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore implementación del puerto KVStore sobre archivos <prefix><key>.json.
type KVStore struct {
	mu     sync.Mutex
	dir    string
	prefix string
}

// NewKVStore crea el directorio si no existe.
func NewKVStore(dir, prefix string) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return &KVStore{dir: dir, prefix: prefix}, nil
}

func (s *KVStore) path(key string) string {
	return filepath.Join(s.dir, s.prefix+key+".json")
}

// Get lee el archivo de la clave; nil si no existe.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return raw, nil
}

// Set escribe el valor vía archivo temporal + rename, para no dejar archivos a medias.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(key, value)
}

// SetMany escribe las claves una a una. No es atómico entre claves.
func (s *KVStore) SetMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		if err := s.write(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *KVStore) write(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, s.prefix+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal %s: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("renombrar %s: %w", key, err)
	}
	return nil
}

// Close no hace nada.
func (s *KVStore) Close() error { return nil }
