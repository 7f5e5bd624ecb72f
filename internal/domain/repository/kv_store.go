package repository

import "context"

// KVStore define el puerto de persistencia del estado (DIP): un key-value de blobs JSON,
// sin versiones ni migraciones. Cada persistencia reescribe todas las claves.
type KVStore interface {
	// Get devuelve el valor de key, o nil y error nil si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany escribe varias claves juntas; los adaptadores que pueden lo hacen de forma atómica.
	SetMany(ctx context.Context, entries map[string][]byte) error
	Close() error
}
