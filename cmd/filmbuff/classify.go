package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmbuff-ai/internal/router"
)

// classify needs no config: routing is keyword based and offline.
func newClassifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <question>",
		Short: "Show how a question would be routed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intent := router.New(opts.logger()).Classify(cmd.Context(), strings.Join(args, " "))

			caps := make([]string, len(intent.Capabilities))
			for i, c := range intent.Capabilities {
				caps[i] = string(c)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "category:     %s\ncapabilities: %s\n", intent.Category, strings.Join(caps, ", "))
			return nil
		},
	}
}
