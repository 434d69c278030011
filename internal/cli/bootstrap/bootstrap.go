// Package bootstrap собирает зависимости CLI из конфигурации.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/stevans93/rent-and-co-sub001/internal/cli/api"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/cache"
	fsrepo "github.com/stevans93/rent-and-co-sub001/internal/cli/repo/fs"
	reposqlite "github.com/stevans93/rent-and-co-sub001/internal/cli/repo/sqlite"
	"github.com/stevans93/rent-and-co-sub001/internal/cli/state"
	"github.com/stevans93/rent-and-co-sub001/internal/config"
)

// OpenCache открывает хранилище кэша согласно cfg.CacheBackend.
func OpenCache(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	switch cfg.CacheBackend {
	case "memory":
		return cache.NewMemory(), nil
	case "redis":
		r, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return r, nil
	default:
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, fmt.Errorf("open cache db: %w", err)
		}
		return s, nil
	}
}

// OpenApp собирает state.App и восстанавливает сохранённое состояние.
// Вызывающий обязан закрыть App через Close.
func OpenApp(ctx context.Context, cfg *config.Config) (*state.App, error) {
	c, err := OpenCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app := state.NewApp(api.New(cfg.ServerURL, cfg.ClientTimeout), c, fsrepo.StateFSStore{})
	if err := app.Init(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("restore client state: %w", err)
	}
	return app, nil
}
