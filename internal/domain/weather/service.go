package weather

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const defaultPlaceLabel = "Your Location"

// Service resolves the current weather for a caller.
type Service interface {
	// Current always succeeds; any failure yields the Fallback snapshot.
	Current(ctx context.Context, loc LocationRequest) Reading
}

// Geocoder turns coordinates into a human readable place.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coords Coordinates) (Place, error)
}

// Forecaster fetches current conditions for a position.
type Forecaster interface {
	CurrentConditions(ctx context.Context, coords Coordinates) (Current, error)
}

type service struct {
	cfg        Config
	geocoder   Geocoder
	forecaster Forecaster
	logger     *slog.Logger
}

// NewService wires up the weather domain.
func NewService(cfg Config, geocoder Geocoder, forecaster Forecaster, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.DefaultPlace) == "" {
		cfg.DefaultPlace = defaultPlaceLabel
	}
	return &service{
		cfg:        cfg,
		geocoder:   geocoder,
		forecaster: forecaster,
		logger:     logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context, loc LocationRequest) Reading {
	snapshot, err := s.resolve(ctx, loc)
	if err != nil {
		s.logger.Warn("weather unavailable, serving fallback", "error", err)
		return Reading{Snapshot: Fallback, Source: SourceFallback}
	}
	return Reading{Snapshot: snapshot, Source: SourceLive}
}

func (s *service) resolve(ctx context.Context, loc LocationRequest) (Snapshot, error) {
	coords, err := locate(loc)
	if err != nil {
		return Snapshot{}, err
	}

	place, err := s.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reverse geocode: %w", err)
	}

	cur, err := s.forecaster.CurrentConditions(ctx, coords)
	if err != nil {
		return Snapshot{}, fmt.Errorf("current conditions: %w", err)
	}

	snapshot := Normalize(cur, s.placeLabel(place))
	s.logger.Info("weather resolved", "location", snapshot.Location, "condition", snapshot.Condition, "temperature_f", snapshot.TemperatureF)
	return snapshot, nil
}

func (s *service) placeLabel(place Place) string {
	for _, candidate := range []string{place.City, place.Subregion} {
		if label := strings.TrimSpace(candidate); label != "" {
			return label
		}
	}
	return s.cfg.DefaultPlace
}

func locate(loc LocationRequest) (Coordinates, error) {
	if loc.Latitude == nil || loc.Longitude == nil {
		return Coordinates{}, ErrLocationUnavailable
	}
	coords := Coordinates{Latitude: *loc.Latitude, Longitude: *loc.Longitude}
	if !coords.Valid() {
		return Coordinates{}, fmt.Errorf("%w: coordinates out of range", ErrLocationUnavailable)
	}
	return coords, nil
}
