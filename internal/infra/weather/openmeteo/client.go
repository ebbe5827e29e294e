package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/smartcloset/internal/domain/weather"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	currentFields  = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"
)

// Client fetches current conditions from the Open-Meteo forecast API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CurrentConditions retrieves the current reading for a position. Temperatures come back
// in Celsius and wind in mph.
func (c *Client) CurrentConditions(ctx context.Context, coords weather.Coordinates) (weather.Current, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(coords), nil)
	if err != nil {
		return weather.Current{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Current{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Current{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Current{}, fmt.Errorf("decode forecast response: %w", err)
	}
	return raw.toCurrent()
}

func (c *Client) endpoint(coords weather.Coordinates) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', 4, 64))
	q.Set("current", currentFields)
	q.Set("temperature_unit", "celsius")
	q.Set("wind_speed_unit", "mph")
	return c.baseURL + "?" + q.Encode()
}

type forecastResponse struct {
	Current *currentBlock `json:"current"`
}

type currentBlock struct {
	Temperature         *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WeatherCode         *int     `json:"weather_code"`
	RelativeHumidity    *float64 `json:"relative_humidity_2m"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
}

var errMissingCurrent = errors.New("forecast response missing current block")

func (r forecastResponse) toCurrent() (weather.Current, error) {
	cur := r.Current
	if cur == nil {
		return weather.Current{}, errMissingCurrent
	}
	var missing []string
	if cur.Temperature == nil {
		missing = append(missing, "temperature_2m")
	}
	if cur.ApparentTemperature == nil {
		missing = append(missing, "apparent_temperature")
	}
	if cur.WeatherCode == nil {
		missing = append(missing, "weather_code")
	}
	if cur.RelativeHumidity == nil {
		missing = append(missing, "relative_humidity_2m")
	}
	if cur.WindSpeed == nil {
		missing = append(missing, "wind_speed_10m")
	}
	if len(missing) > 0 {
		return weather.Current{}, fmt.Errorf("forecast response missing fields: %s", strings.Join(missing, ", "))
	}
	return weather.Current{
		TemperatureC: *cur.Temperature,
		ApparentC:    *cur.ApparentTemperature,
		WeatherCode:  *cur.WeatherCode,
		HumidityPct:  *cur.RelativeHumidity,
		WindSpeedMph: *cur.WindSpeed,
	}, nil
}

var _ weather.Forecaster = (*Client)(nil)
