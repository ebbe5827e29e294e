package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Weather  WeatherConfig  `yaml:"weather"`
	Storage  StorageConfig  `yaml:"storage"`
	Wardrobe WardrobeConfig `yaml:"wardrobe"`
	Explore  ExploreConfig  `yaml:"explore"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent POST requests.
// Exclude lists path prefixes that must never be replayed.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// AuthConfig holds token signing and sign-in provider settings.
type AuthConfig struct {
	Secret          string        `yaml:"secret"`
	TokenTTL        time.Duration `yaml:"tokenTtl"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTtl"`
	Google          GoogleConfig  `yaml:"google"`
}

// GoogleConfig holds OAuth client settings for Google sign-in.
type GoogleConfig struct {
	ClientID             string `yaml:"clientId"`
	ClientSecret         string `yaml:"clientSecret"`
	RedirectURL          string `yaml:"redirectUrl"`
	TokenEncryptionKey   string `yaml:"tokenEncryptionKey"`
	PostLoginRedirectURL string `yaml:"postLoginRedirectUrl"`
}

// WeatherConfig points at the forecast and reverse geocoding providers.
type WeatherConfig struct {
	ForecastURL  string        `yaml:"forecastUrl"`
	GeocodeURL   string        `yaml:"geocodeUrl"`
	UserAgent    string        `yaml:"userAgent"`
	Timeout      time.Duration `yaml:"timeout"`
	DefaultPlace string        `yaml:"defaultPlace"`
}

// StorageConfig groups the optional backing stores. Empty settings fall back
// to in-memory implementations.
type StorageConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
	R2       R2Config       `yaml:"r2"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the follow graph.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// R2Config contains S3-compatible object storage settings for closet photos.
type R2Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// Enabled reports whether enough settings are present to use R2.
func (c R2Config) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

// WardrobeConfig drives closet uploads.
type WardrobeConfig struct {
	MaxImageBytes int64 `yaml:"maxImageBytes"`
}

// ExploreConfig drives member search.
type ExploreConfig struct {
	SearchLimit     int `yaml:"searchLimit"`
	SuggestionLimit int `yaml:"suggestionLimit"`
}

// Load reads configuration from defaults, an optional .env file, a YAML file
// and environment variables, in that order.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg := defaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv populates unset environment variables from ENV_FILE or ./.env.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	envString("HTTP_ADDRESS", &cfg.HTTP.Address)
	envDuration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout)
	envDuration("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout)
	envList("HTTP_ALLOWED_ORIGINS", &cfg.HTTP.AllowedOrigins)
	envBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	envInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	envInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)
	envBool("HTTP_RETRY_ENABLED", &cfg.HTTP.Retry.Enabled)
	envInt("HTTP_RETRY_MAX_ATTEMPTS", &cfg.HTTP.Retry.MaxAttempts)
	envDuration("HTTP_RETRY_BASE_BACKOFF", &cfg.HTTP.Retry.BaseBackoff)

	envString("AUTH_SECRET", &cfg.Auth.Secret)
	envDuration("AUTH_TOKEN_TTL", &cfg.Auth.TokenTTL)
	envDuration("AUTH_REFRESH_TOKEN_TTL", &cfg.Auth.RefreshTokenTTL)
	envString("GOOGLE_CLIENT_ID", &cfg.Auth.Google.ClientID)
	envString("GOOGLE_CLIENT_SECRET", &cfg.Auth.Google.ClientSecret)
	envString("GOOGLE_REDIRECT_URL", &cfg.Auth.Google.RedirectURL)
	envString("GOOGLE_TOKEN_ENCRYPTION_KEY", &cfg.Auth.Google.TokenEncryptionKey)
	envString("GOOGLE_POST_LOGIN_REDIRECT_URL", &cfg.Auth.Google.PostLoginRedirectURL)

	envString("WEATHER_FORECAST_URL", &cfg.Weather.ForecastURL)
	envString("WEATHER_GEOCODE_URL", &cfg.Weather.GeocodeURL)
	envString("WEATHER_USER_AGENT", &cfg.Weather.UserAgent)
	envDuration("WEATHER_TIMEOUT", &cfg.Weather.Timeout)
	envString("WEATHER_DEFAULT_PLACE", &cfg.Weather.DefaultPlace)

	envString("POSTGRES_DSN", &cfg.Storage.Postgres.DSN)
	envInt32("POSTGRES_MAX_CONNS", &cfg.Storage.Postgres.MaxConns)
	envInt32("POSTGRES_MIN_CONNS", &cfg.Storage.Postgres.MinConns)
	envBool("VALKEY_ENABLED", &cfg.Storage.Valkey.Enabled)
	envString("VALKEY_ADDR", &cfg.Storage.Valkey.Addr)
	envString("VALKEY_PREFIX", &cfg.Storage.Valkey.Prefix)
	envString("R2_ENDPOINT", &cfg.Storage.R2.Endpoint)
	envString("R2_ACCESS_KEY", &cfg.Storage.R2.AccessKey)
	envString("R2_SECRET_KEY", &cfg.Storage.R2.SecretKey)
	envString("R2_BUCKET", &cfg.Storage.R2.Bucket)
	envString("R2_REGION", &cfg.Storage.R2.Region)

	envInt64("WARDROBE_MAX_IMAGE_BYTES", &cfg.Wardrobe.MaxImageBytes)
	envInt("EXPLORE_SEARCH_LIMIT", &cfg.Explore.SearchLimit)
	envInt("EXPLORE_SUGGESTION_LIMIT", &cfg.Explore.SuggestionLimit)
}

func envString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envList(key string, dst *[]string) {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func envInt(key string, dst *int) {
	if parsed, err := strconv.Atoi(os.Getenv(key)); err == nil {
		*dst = parsed
	}
}

func envInt32(key string, dst *int32) {
	if parsed, err := strconv.ParseInt(os.Getenv(key), 10, 32); err == nil {
		*dst = int32(parsed)
	}
}

func envInt64(key string, dst *int64) {
	if parsed, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		*dst = parsed
	}
}

func envDuration(key string, dst *time.Duration) {
	if parsed, err := time.ParseDuration(os.Getenv(key)); err == nil {
		*dst = parsed
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/auth",
					"/api/v1/wardrobe",
					"/api/v1/vibes",
					"/api/v1/explore",
				},
			},
		},
		Auth: AuthConfig{
			TokenTTL:        time.Hour,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
		Weather: WeatherConfig{
			ForecastURL:  "https://api.open-meteo.com/v1/forecast",
			GeocodeURL:   "https://nominatim.openstreetmap.org",
			UserAgent:    "smartcloset/1.0",
			Timeout:      8 * time.Second,
			DefaultPlace: "Your Location",
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{MaxConns: 4},
			Valkey:   ValkeyConfig{Prefix: "closet"},
			R2:       R2Config{Region: "auto"},
		},
		Wardrobe: WardrobeConfig{
			MaxImageBytes: 8 << 20,
		},
		Explore: ExploreConfig{
			SearchLimit:     20,
			SuggestionLimit: 10,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("auth.secret cannot be empty")
	}
	if c.Auth.TokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("auth token ttls must be positive")
	}
	if key := c.Auth.Google.TokenEncryptionKey; key != "" {
		if n := len(key); n != 16 && n != 24 && n != 32 {
			return errors.New("auth.google.tokenEncryptionKey must be 16, 24, or 32 bytes")
		}
	}
	if c.Weather.ForecastURL == "" || c.Weather.GeocodeURL == "" {
		return errors.New("weather provider urls cannot be empty")
	}
	if c.Weather.Timeout <= 0 {
		return errors.New("weather.timeout must be positive")
	}
	if c.Storage.Valkey.Enabled && strings.TrimSpace(c.Storage.Valkey.Addr) == "" {
		return errors.New("storage.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Wardrobe.MaxImageBytes <= 0 {
		return errors.New("wardrobe.maxImageBytes must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
