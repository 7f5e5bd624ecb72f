package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pope-market/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertSQL = `
INSERT INTO kv_store (key, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

// KVStore implementación del puerto KVStore sobre una tabla kv_store (jsonb).
type KVStore struct {
	pool   *pgxpool.Pool
	prefix string
}

// NewKVStore construye el store sobre un pool ya abierto.
func NewKVStore(pool *pgxpool.Pool, prefix string) *KVStore {
	return &KVStore{pool: pool, prefix: prefix}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla kv_store: %w", err)
	}
	return nil
}

// Get devuelve el JSON guardado, o nil si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw string
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM kv_store WHERE key = $1`, s.prefix+key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(raw), nil
}

// Set hace upsert de una clave.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.pool.Exec(ctx, upsertSQL, s.prefix+key, string(value)); err != nil {
		return fmt.Errorf("set %s: %w", key, mapPgError(err))
	}
	return nil
}

// SetMany hace upsert de todas las claves en una sola transacción.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for k, v := range entries {
		if _, err := tx.Exec(ctx, upsertSQL, s.prefix+k, string(v)); err != nil {
			return fmt.Errorf("set %s: %w", k, mapPgError(err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra el pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
