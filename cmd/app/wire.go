//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/astro-dates/internal/bootstrap"
	"github.com/yanqian/astro-dates/internal/domain/advisor"
	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/reminder"
	"github.com/yanqian/astro-dates/internal/domain/share"
	"github.com/yanqian/astro-dates/internal/infra/config"
	httpiface "github.com/yanqian/astro-dates/internal/interface/http"
	"github.com/yanqian/astro-dates/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCatalogSource,
		provideShareConfig,
		providePopularLimit,
		provideReminderRepository,
		provideAdvisorStore,
		almanac.NewService,
		advisor.NewService,
		reminder.NewService,
		share.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
