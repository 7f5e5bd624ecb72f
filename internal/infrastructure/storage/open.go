// Package storage elige el adaptador KVStore según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/pope-market/internal/domain/repository"
	"github.com/jhoicas/pope-market/internal/infrastructure/filestore"
	"github.com/jhoicas/pope-market/internal/infrastructure/memory"
	"github.com/jhoicas/pope-market/internal/infrastructure/postgres"
	"github.com/jhoicas/pope-market/internal/infrastructure/redis"
	"github.com/jhoicas/pope-market/pkg/config"
	"github.com/jhoicas/pope-market/pkg/logger"
)

// Open abre el KVStore configurado. El llamador debe cerrarlo.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.KVStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	sc := cfg.Store

	switch sc.Driver {
	case config.DriverMemory:
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		return memory.NewKVStore(sc.KeyPrefix), nil

	case config.DriverFile:
		kv, err := filestore.NewKVStore(sc.Dir, sc.KeyPrefix)
		if err != nil {
			return nil, err
		}
		log.Info().Str("dir", sc.Dir).Msg("store en archivos")
		return kv, nil

	case config.DriverRedis:
		if sc.RedisURL == "" {
			return nil, fmt.Errorf("STORE_DRIVER=redis requiere REDIS_URL")
		}
		kv, err := redis.NewKVStore(ctx, sc.RedisURL, sc.KeyPrefix)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("store en redis")
		return kv, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		kv := postgres.NewKVStore(pool, sc.KeyPrefix)
		if err := kv.EnsureSchema(ctx); err != nil {
			_ = kv.Close()
			return nil, err
		}
		log.Info().Msg("store en postgres")
		return kv, nil

	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", sc.Driver)
	}
}
