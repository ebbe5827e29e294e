package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanqian/smartcloset/internal/domain/weather"
	"github.com/yanqian/smartcloset/internal/infra/geocode/nominatim"
	"github.com/yanqian/smartcloset/internal/infra/weather/openmeteo"
)

type providerFlags struct {
	lat, lon    float64
	forecastURL string
	geocodeURL  string
	userAgent   string
	timeout     time.Duration
}

func (p *providerFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p.lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&p.lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().StringVar(&p.forecastURL, "forecast-url", "https://api.open-meteo.com/v1/forecast", "Open-Meteo forecast endpoint")
	cmd.Flags().StringVar(&p.geocodeURL, "geocode-url", "https://nominatim.openstreetmap.org", "Nominatim base URL")
	cmd.Flags().StringVar(&p.userAgent, "user-agent", "smartcloset-cli/1.0", "User-Agent sent to Nominatim")
	cmd.Flags().DurationVar(&p.timeout, "timeout", 10*time.Second, "per-provider request timeout")
}

func (p *providerFlags) location(cmd *cobra.Command) weather.LocationRequest {
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
		return weather.LocationRequest{}
	}
	lat, lon := p.lat, p.lon
	return weather.LocationRequest{Latitude: &lat, Longitude: &lon}
}

func (p *providerFlags) service(opts *rootOptions) weather.Service {
	return weather.NewService(
		weather.Config{},
		nominatim.NewClient(p.geocodeURL, p.userAgent, p.timeout),
		openmeteo.NewClient(p.forecastURL, p.timeout),
		opts.logger(),
	)
}

func newWeatherCmd(opts *rootOptions) *cobra.Command {
	flags := &providerFlags{}
	cmd := &cobra.Command{
		Use:   "weather --lat LAT --lon LON",
		Short: "Fetch the normalized weather snapshot",
		Long:  `Fetch current conditions for a position. Without coordinates, or when a provider fails, the fallback snapshot is printed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reading := flags.service(opts).Current(cmd.Context(), flags.location(cmd))
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), reading)
			}
			printSnapshot(cmd, reading.Snapshot, reading.Source)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func printSnapshot(cmd *cobra.Command, snap weather.Snapshot, source weather.Source) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s in %s (%s)\n", snap.Icon, snap.ConditionText, snap.Location, source)
	fmt.Fprintf(out, "  temperature %d°F, feels like %d°F\n", snap.TemperatureF, snap.FeelsLikeF)
	fmt.Fprintf(out, "  humidity %d%%, wind %d mph\n", snap.HumidityPct, snap.WindSpeedMph)
}
