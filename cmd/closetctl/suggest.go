package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/smartcloset/internal/domain/outfit"
	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
)

type suggestFlags struct {
	providerFlags
	live      bool
	tempC     float64
	feelsC    float64
	code      int
	humidity  float64
	windMph   float64
	place     string
	vibeNames []string
}

type suggestOutput struct {
	Weather          weather.Snapshot    `json:"weather"`
	Source           weather.Source      `json:"source"`
	TemperatureColor string              `json:"temperatureColor"`
	Suggestions      []outfit.Suggestion `json:"suggestions"`
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	flags := &suggestFlags{}
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Run the outfit engine",
		Long: `Run the outfit engine against hand-entered conditions, or against live weather with --live.
Vibes may be given by id ("1") or name ("Confident").`,
		Example: `  closetctl suggest --temp-c 3 --code 61 --wind-mph 18 --vibes Confident,7
  closetctl suggest --live --lat 40.71 --lon -74.01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, source := flags.snapshot(cmd, opts)
			out := suggestOutput{
				Weather:          snap,
				Source:           source,
				TemperatureColor: outfit.TemperatureColor(snap.TemperatureF),
				Suggestions:      outfit.Suggest(snap, vibe.NewSelection(flags.vibeNames...), nil),
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printSnapshot(cmd, snap, source)
			for _, s := range out.Suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s\n  %s\n", s.Category, strings.Join(s.Items, ", "), s.Tip)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.live, "live", false, "fetch weather for --lat/--lon instead of using the condition flags")
	cmd.Flags().Float64Var(&flags.tempC, "temp-c", 18, "air temperature in Celsius")
	cmd.Flags().Float64Var(&flags.feelsC, "feels-c", 0, "apparent temperature in Celsius (defaults to --temp-c)")
	cmd.Flags().IntVar(&flags.code, "code", 1, "WMO weather code")
	cmd.Flags().Float64Var(&flags.humidity, "humidity", 50, "relative humidity percent")
	cmd.Flags().Float64Var(&flags.windMph, "wind-mph", 5, "wind speed in mph")
	cmd.Flags().StringVar(&flags.place, "place", "Your City", "location label")
	cmd.Flags().StringSliceVar(&flags.vibeNames, "vibes", nil, "selected vibes, comma separated")
	return cmd
}

func (f *suggestFlags) snapshot(cmd *cobra.Command, opts *rootOptions) (weather.Snapshot, weather.Source) {
	if f.live {
		reading := f.service(opts).Current(cmd.Context(), f.location(cmd))
		return reading.Snapshot, reading.Source
	}
	feels := f.feelsC
	if !cmd.Flags().Changed("feels-c") {
		feels = f.tempC
	}
	cur := weather.Current{
		TemperatureC: f.tempC,
		ApparentC:    feels,
		WeatherCode:  f.code,
		HumidityPct:  f.humidity,
		WindSpeedMph: f.windMph,
	}
	return weather.Normalize(cur, f.place), weather.SourceProvided
}
