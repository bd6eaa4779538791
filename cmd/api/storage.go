package main

import (
	"context"
	"fmt"

	"kanbanpro/internal/adapter/cache"
	dbadapter "kanbanpro/internal/adapter/db"
	"kanbanpro/internal/adapter/memory"
	"kanbanpro/internal/config"
	"kanbanpro/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// openStorage returns the key-value backend selected by STORAGE_DRIVER.
func openStorage(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.NewKVStore(), nil
	case config.StorageMySQL, config.StorageSQLite:
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		repo := dbadapter.NewKVRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := cache.NewRedisStore(client, cfg.RedisPrefix)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
