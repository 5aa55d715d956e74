package store

import (
	"fmt"

	"github.com/ThieuDV091002/hotel-management-system-sub002/pkg/config"
)

// New builds the store selected by configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Store.FilePath), nil
	case "redis":
		return NewRedisStore(
			cfg.Redis.URL,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Store.Namespace,
			cfg.Store.SessionTTL,
		)
	default:
		return nil, fmt.Errorf("unknown session store backend %q", cfg.Store.Backend)
	}
}
