package outfit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
	apperrors "github.com/yanqian/smartcloset/pkg/errors"
	"github.com/yanqian/smartcloset/pkg/util"
)

// Inventory reads a user's closet.
type Inventory interface {
	List(ctx context.Context, userID int64) ([]wardrobe.Item, error)
}

// VibeResolver turns selected identifiers into display chips.
type VibeResolver interface {
	Resolve(ctx context.Context, userID int64, identifiers []string) ([]vibe.Vibe, error)
}

// GenerateRequest asks for suggestions. Weather, when present, is used as-is
// and no lookup happens.
type GenerateRequest struct {
	Latitude  *float64          `json:"latitude"`
	Longitude *float64          `json:"longitude"`
	Weather   *weather.Snapshot `json:"weather"`
	Vibes     []string          `json:"vibes"`
}

// GenerateResponse is returned to the HTTP handler.
type GenerateResponse struct {
	Weather          weather.Snapshot `json:"weather"`
	WeatherSource    weather.Source   `json:"weatherSource"`
	TemperatureColor string           `json:"temperatureColor"`
	Vibes            []vibe.Vibe      `json:"vibes"`
	Suggestions      []Suggestion     `json:"suggestions"`
	InventorySize    int              `json:"inventorySize"`
	GeneratedAt      time.Time        `json:"generatedAt"`
}

// Service produces outfit suggestions.
type Service interface {
	Generate(ctx context.Context, userID int64, req GenerateRequest) (GenerateResponse, error)
	Preview(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}

type service struct {
	weather   weather.Service
	inventory Inventory
	vibes     VibeResolver
	logger    *slog.Logger
	now       util.Clock
}

// NewService constructs a Service instance.
func NewService(weatherSvc weather.Service, inventory Inventory, vibes VibeResolver, logger *slog.Logger) Service {
	return &service{
		weather:   weatherSvc,
		inventory: inventory,
		vibes:     vibes,
		logger:    logger.With("component", "outfit.service"),
		now:       util.NowUTC,
	}
}

// Generate builds suggestions for a signed-in user, reading their closet.
func (s *service) Generate(ctx context.Context, userID int64, req GenerateRequest) (GenerateResponse, error) {
	if userID == 0 {
		return GenerateResponse{}, apperrors.Wrap("unauthorized", "missing user", nil)
	}
	items, err := s.inventory.List(ctx, userID)
	if err != nil {
		return GenerateResponse{}, apperrors.Wrap("inventory_error", "failed to read closet", err)
	}
	return s.build(ctx, userID, req, items)
}

// Preview builds suggestions without an account or closet.
func (s *service) Preview(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	return s.build(ctx, 0, req, nil)
}

func (s *service) build(ctx context.Context, userID int64, req GenerateRequest, items []wardrobe.Item) (GenerateResponse, error) {
	reading, err := s.resolveWeather(ctx, req)
	if err != nil {
		return GenerateResponse{}, err
	}
	selection := vibe.NewSelection(req.Vibes...)
	chips, err := s.vibes.Resolve(ctx, userID, req.Vibes)
	if err != nil {
		s.logger.Warn("resolve vibes failed", "user_id", userID, "error", err)
		chips = nil
	}
	if chips == nil {
		chips = []vibe.Vibe{}
	}
	suggestions := Suggest(reading.Snapshot, selection, items)
	s.logger.Info("outfit generated",
		"user_id", userID,
		"weather_source", reading.Source,
		"temperature_f", reading.Snapshot.TemperatureF,
		"vibes", len(selection),
		"suggestions", len(suggestions),
	)
	return GenerateResponse{
		Weather:          reading.Snapshot,
		WeatherSource:    reading.Source,
		TemperatureColor: TemperatureColor(reading.Snapshot.TemperatureF),
		Vibes:            chips,
		Suggestions:      suggestions,
		InventorySize:    len(items),
		GeneratedAt:      s.now(),
	}, nil
}

func (s *service) resolveWeather(ctx context.Context, req GenerateRequest) (weather.Reading, error) {
	if req.Weather == nil {
		return s.weather.Current(ctx, weather.LocationRequest{Latitude: req.Latitude, Longitude: req.Longitude}), nil
	}
	if err := validateSnapshot(*req.Weather); err != nil {
		return weather.Reading{}, apperrors.Wrap("invalid_input", err.Error(), nil)
	}
	return weather.Reading{Snapshot: *req.Weather, Source: weather.SourceProvided}, nil
}

func validateSnapshot(snap weather.Snapshot) error {
	if !snap.Condition.Valid() {
		return fmt.Errorf("unknown weather condition %q", snap.Condition)
	}
	if snap.HumidityPct < 0 || snap.HumidityPct > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if snap.WindSpeedMph < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	return nil
}
