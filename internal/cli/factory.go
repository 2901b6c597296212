package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"taskcli/internal/config"
	"taskcli/internal/service"
	"taskcli/internal/store"
)

// FileStoreFactory backs commands with the JSON file named by cfg.File.
func FileStoreFactory(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
	return store.New(cfg.File,
		store.WithLogger(logger),
		store.WithLockTimeout(cfg.LockTimeout),
	), nil
}
