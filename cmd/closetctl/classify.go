package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yanqian/smartcloset/internal/domain/weather"
)

type classifiedCode struct {
	Code int `json:"code"`
	weather.Classification
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify CODE [CODE...]",
		Short: "Classify WMO weather codes",
		Long:  `Print the condition, label and icon the service derives from each WMO interpretation code.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]classifiedCode, 0, len(args))
			for _, arg := range args {
				code, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("weather code %q is not an integer", arg)
				}
				results = append(results, classifiedCode{Code: code, Classification: weather.ClassifyCondition(code)})
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-7s %s %s\n", r.Code, r.Condition, r.Icon, r.Text)
			}
			return nil
		},
	}
}
