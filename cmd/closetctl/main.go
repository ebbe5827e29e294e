// Command closetctl runs the weather normalizer and outfit engine from a terminal.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/smartcloset/pkg/logger"
)

type rootOptions struct {
	jsonOutput bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "closetctl",
		Short:        "Smart closet tooling",
		Long:         `Inspect live weather, WMO code classification and outfit suggestions without running the API.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log provider calls to stderr")

	root.AddCommand(
		newClassifyCmd(opts),
		newWeatherCmd(opts),
		newSuggestCmd(opts),
	)
	return root
}

func (o *rootOptions) logger() *slog.Logger {
	if o.verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return logger.Discard()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
