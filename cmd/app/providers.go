package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/smartcloset/internal/domain/auth"
	"github.com/yanqian/smartcloset/internal/domain/outfit"
	"github.com/yanqian/smartcloset/internal/domain/social"
	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
	"github.com/yanqian/smartcloset/internal/infra/config"
	"github.com/yanqian/smartcloset/internal/infra/followstore"
	"github.com/yanqian/smartcloset/internal/infra/geocode/nominatim"
	"github.com/yanqian/smartcloset/internal/infra/imagestore"
	"github.com/yanqian/smartcloset/internal/infra/userrepo"
	"github.com/yanqian/smartcloset/internal/infra/viberepo"
	"github.com/yanqian/smartcloset/internal/infra/wardroberepo"
	"github.com/yanqian/smartcloset/internal/infra/weather/openmeteo"
	httpiface "github.com/yanqian/smartcloset/internal/interface/http"
)

// userStore is satisfied by both user repositories: accounts and the member directory
// live in the same table.
type userStore interface {
	auth.Repository
	social.Directory
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		Google: auth.GoogleConfig{
			ClientID:             cfg.Auth.Google.ClientID,
			ClientSecret:         cfg.Auth.Google.ClientSecret,
			RedirectURL:          cfg.Auth.Google.RedirectURL,
			TokenEncryptionKey:   cfg.Auth.Google.TokenEncryptionKey,
			PostLoginRedirectURL: cfg.Auth.Google.PostLoginRedirectURL,
		},
	}
}

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{DefaultPlace: cfg.Weather.DefaultPlace}
}

func provideWardrobeConfig(cfg *config.Config) wardrobe.Config {
	return wardrobe.Config{MaxImageBytes: cfg.Wardrobe.MaxImageBytes}
}

func provideSocialConfig(cfg *config.Config) social.Config {
	return social.Config{
		SearchLimit:     cfg.Explore.SearchLimit,
		SuggestionLimit: cfg.Explore.SuggestionLimit,
	}
}

func provideHTTPOptions(cfg *config.Config) httpiface.Options {
	return httpiface.Options{
		PostLoginRedirectURL: cfg.Auth.Google.PostLoginRedirectURL,
		MaxImageBytes:        cfg.Wardrobe.MaxImageBytes,
	}
}

func provideForecaster(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.Weather.ForecastURL, cfg.Weather.Timeout)
}

func provideGeocoder(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(cfg.Weather.GeocodeURL, cfg.Weather.UserAgent, cfg.Weather.Timeout)
}

// providePostgresPool returns nil when no DSN is configured or the database is
// unreachable; repositories then fall back to memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, func()) {
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil, noop
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil, noop
	}
	logger.Info("postgres repositories enabled")
	return pool, pool.Close
}

func provideUserStore(pool *pgxpool.Pool) userStore {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideAuthRepository(store userStore) auth.Repository {
	return store
}

func provideMemberDirectory(store userStore) social.Directory {
	return store
}

func provideWardrobeRepository(pool *pgxpool.Pool) wardrobe.Repository {
	if pool == nil {
		return wardroberepo.NewMemoryRepository()
	}
	return wardroberepo.NewPostgresRepository(pool)
}

func provideVibeRepository(pool *pgxpool.Pool) vibe.Repository {
	if pool == nil {
		return viberepo.NewMemoryRepository()
	}
	return viberepo.NewPostgresRepository(pool)
}

func provideImageStore(cfg *config.Config, logger *slog.Logger) wardrobe.ImageStore {
	r2 := cfg.Storage.R2
	if !r2.Enabled() {
		logger.Info("r2 storage not configured, keeping closet photos in memory")
		return imagestore.NewMemoryStore()
	}
	store, err := imagestore.NewR2Store(r2.Endpoint, r2.AccessKey, r2.SecretKey, r2.Bucket, r2.Region, logger)
	if err != nil {
		logger.Error("failed to create r2 client, keeping closet photos in memory", "error", err)
		return imagestore.NewMemoryStore()
	}
	logger.Info("r2 image store enabled", "bucket", r2.Bucket)
	return store
}

func provideFollowStore(cfg *config.Config, logger *slog.Logger) (social.FollowStore, func()) {
	noop := func() {}
	if !cfg.Storage.Valkey.Enabled {
		return followstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Storage.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory follow store", "error", err)
		return followstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory follow store", "error", err)
		return followstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory follow store", "error", err)
		client.Close()
		return followstore.NewMemoryStore(), noop
	}
	logger.Info("valkey follow store enabled", "addr", cfg.Storage.Valkey.Addr)
	return followstore.NewValkeyStore(client, cfg.Storage.Valkey.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideInventory(svc wardrobe.Service) outfit.Inventory {
	return svc
}

func provideItemCounter(svc wardrobe.Service) social.ItemCounter {
	return svc
}

func provideVibeResolver(svc vibe.Service) outfit.VibeResolver {
	return svc
}
