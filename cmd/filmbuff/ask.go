package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/model"
)

type askResult struct {
	Answer    string `json:"answer"`
	Cached    bool   `json:"cached"`
	Retried   bool   `json:"retried"`
	Failed    bool   `json:"failed"`
	Category  string `json:"category,omitempty"`
	RequestID string `json:"request_id"`
}

func newAskCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a movie or TV question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.InitConcierge(ctx); err != nil {
				return err
			}

			out, err := a.Concierge.Ask(ctx, model.Scope{UserID: "local", Channel: model.ChannelCLI}, concierge.AskInput{
				Query: strings.Join(args, " "),
			})
			if err != nil {
				var rl *concierge.RateLimitError
				if errors.As(err, &rl) {
					return fmt.Errorf("rate limit reached, try again in %ds", rl.RetryAfter)
				}
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(askResult{
					Answer:    out.Answer,
					Cached:    out.Cached,
					Retried:   out.Retried,
					Failed:    out.Failed,
					Category:  string(out.Intent.Category),
					RequestID: out.RequestID,
				})
			}

			fmt.Fprintln(w, out.Answer)
			if out.Cached {
				fmt.Fprintln(w, "\n(cached answer)")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
