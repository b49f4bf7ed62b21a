package docstore

import (
	"context"
	"fmt"

	"rwk-afmg/core/database"
	"rwk-afmg/core/reconcile"
)

// Store is the full surface shared by every backend.
type Store interface {
	reconcile.Store
	reconcile.Dropper
	reconcile.Reader
	Collections(ctx context.Context) ([]string, error)
}

// SchemaChecker is implemented by backends with a fixed relational schema.
type SchemaChecker interface {
	CheckSchema(ctx context.Context) ([]string, error)
}

var _ SchemaChecker = (*GormStore)(nil)

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GormStore)(nil)
	_ Store = (*RedisStore)(nil)
)

// Open builds the configured backend. The returned close function releases its connection.
func Open(ctx context.Context, cfg Config, dbCfg database.Config) (Store, func() error, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case BackendRedis:
		rdb, err := NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(rdb, cfg.Redis.Prefix), rdb.Close, nil

	case BackendDatabase, "":
		db, err := database.Connect(dbCfg)
		if err != nil {
			return nil, nil, err
		}
		store := NewGormStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return store, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
