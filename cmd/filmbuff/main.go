package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filmbuff-ai/config"
	"filmbuff-ai/internal/app"
	"filmbuff-ai/pkg/log"
)

var version = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "filmbuff",
		Short:         "FilmBuff - movie and TV concierge from the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default: search ./config, ., /etc/filmbuff)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(
		newAskCmd(opts),
		newClassifyCmd(opts),
		newCacheCmd(opts),
	)
	return root
}

func (o *globalOptions) logger() log.Logger {
	return log.Init(log.ZapConfig{
		Level:    o.logLevel,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}

// openApp loads config and opens the response cache. Callers must Close it.
func (o *globalOptions) openApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, o.logger(), cfg)
}
