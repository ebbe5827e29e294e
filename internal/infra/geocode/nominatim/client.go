package nominatim

import (
	"context"
	"encoding/json"
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
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "smartcloset/1.0"
)

// Client reverse geocodes coordinates through an OSM Nominatim instance.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a geocoder. Nominatim's usage policy requires an identifying user agent.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	agent := strings.TrimSpace(userAgent)
	if agent == "" {
		agent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(endpoint, "/"),
		userAgent:  agent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ReverseGeocode resolves the place name for a position.
func (c *Client) ReverseGeocode(ctx context.Context, coords weather.Coordinates) (weather.Place, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', 6, 64))
	q.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return weather.Place{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Place{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Place{}, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return weather.Place{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if raw.Error != "" {
		return weather.Place{}, fmt.Errorf("geocode api error: %s", raw.Error)
	}
	return raw.Address.toPlace(), nil
}

type reverseResponse struct {
	Error   string  `json:"error"`
	Address address `json:"address"`
}

type address struct {
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	County        string `json:"county"`
	StateDistrict string `json:"state_district"`
	State         string `json:"state"`
}

func (a address) toPlace() weather.Place {
	return weather.Place{
		City:      firstNonEmpty(a.City, a.Town, a.Village),
		Subregion: firstNonEmpty(a.County, a.StateDistrict, a.State),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

var _ weather.Geocoder = (*Client)(nil)
