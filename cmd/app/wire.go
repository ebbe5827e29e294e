//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/smartcloset/internal/bootstrap"
	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/domain/outfit"
	"github.com/yanqian/smartcloset/internal/domain/social"
	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
	"github.com/yanqian/smartcloset/internal/infra/config"
	"github.com/yanqian/smartcloset/internal/infra/geocode/nominatim"
	"github.com/yanqian/smartcloset/internal/infra/weather/openmeteo"
	httpiface "github.com/yanqian/smartcloset/internal/interface/http"
	"github.com/yanqian/smartcloset/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideWeatherConfig,
		provideWardrobeConfig,
		provideSocialConfig,
		provideHTTPOptions,
		provideForecaster,
		provideGeocoder,
		providePostgresPool,
		provideUserStore,
		provideAuthRepository,
		provideMemberDirectory,
		provideWardrobeRepository,
		provideVibeRepository,
		provideImageStore,
		provideFollowStore,
		provideInventory,
		provideItemCounter,
		provideVibeResolver,
		auth.NewService,
		weather.NewService,
		wardrobe.NewService,
		vibe.NewService,
		outfit.NewService,
		social.NewService,
		wire.Bind(new(weather.Forecaster), new(*openmeteo.Client)),
		wire.Bind(new(weather.Geocoder), new(*nominatim.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
