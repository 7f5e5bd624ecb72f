package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/jhoicas/pope-market/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore implementación del puerto KVStore sobre Redis. Las claves no expiran.
type KVStore struct {
	rdb    *redis.Client
	prefix string
}

// NewKVStore conecta a Redis desde una URL redis://... y verifica la conexión.
func NewKVStore(ctx context.Context, url, prefix string) (*KVStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url inválida: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}
	return &KVStore{rdb: rdb, prefix: prefix}, nil
}

// Get devuelve el valor, o nil si la clave no existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

// Set guarda el valor sin TTL.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// SetMany escribe todas las claves en un MULTI/EXEC.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, s.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi set: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (s *KVStore) Close() error {
	return s.rdb.Close()
}
