package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/reminder"
	"github.com/yanqian/astro-dates/internal/domain/share"
	"github.com/yanqian/astro-dates/internal/infra/catalogstore"
	"github.com/yanqian/astro-dates/internal/infra/config"
	"github.com/yanqian/astro-dates/internal/infra/popularstore"
	"github.com/yanqian/astro-dates/internal/infra/reminderrepo"
)

func provideCatalogSource(cfg *config.Config, logger *slog.Logger) (almanac.Source, error) {
	return catalogstore.NewFileSource(cfg.Data.Dir, logger)
}

func provideShareConfig(cfg *config.Config) share.Config {
	return share.Config{
		Secret: cfg.Share.Secret,
		TTL:    cfg.Share.TTL,
	}
}

func providePopularLimit(cfg *config.Config) int {
	return cfg.Advisor.PopularLimit
}

func provideReminderRepository(cfg *config.Config, logger *slog.Logger) reminder.Repository {
	fallback := reminderrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Reminders.Postgres.DSN)
	if dsn == "" {
		logger.Info("reminders postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Reminders.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Reminders.Postgres.MaxConns
	}
	if cfg.Reminders.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Reminders.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("reminders postgres repository enabled")
	return reminderrepo.NewPostgresRepository(pool)
}

func provideAdvisorStore(cfg *config.Config, logger *slog.Logger) advisor.Store {
	if cfg.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return popularstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return popularstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("popular-date valkey store enabled", "addr", cfg.Cache.Addr)
			return popularstore.NewValkeyStore(client, "dates")
		}
	}
	return popularstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
