package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filmbuff-ai/config"
	_ "filmbuff-ai/docs" // Swagger docs
	"filmbuff-ai/internal/app"
	conciergeHTTP "filmbuff-ai/internal/concierge/delivery/http"
	tgDelivery "filmbuff-ai/internal/concierge/delivery/telegram"
	"filmbuff-ai/internal/httpserver"
	"filmbuff-ai/internal/middleware"
	"filmbuff-ai/pkg/log"
	"filmbuff-ai/pkg/telegram"
)

const (
	ngrokAPIBase    = "http://ngrok:4040"
	telegramWebhook = "/webhook/telegram"
)

// @title       FilmBuff Concierge API
// @description Movie and TV concierge: keyword routing, specialist agents over TMDb, response cache and query rate limiting.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FilmBuff concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Response cache
	application, err := app.New(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to open response cache: ", err)
		return
	}
	defer func() {
		if cerr := application.Close(); cerr != nil {
			logger.Warnf(ctx, "Failed to close backends: %v", cerr)
		}
	}()

	// 4. Concierge pipeline
	if err := application.InitConcierge(ctx); err != nil {
		logger.Error(ctx, "Failed to initialize concierge: ", err)
		return
	}

	mw := middleware.New(logger, cfg.Throttle)
	conciergeHandler := conciergeHTTP.New(logger, application.Concierge)

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramHandler = initTelegram(ctx, logger, cfg.Telegram, application)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		Middleware:       mw,
		ConciergeHandler: conciergeHandler,
		TelegramHandler:  telegramHandler,
		Readiness:        application.Readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	runErr := httpServer.Run(ctx)

	// Finish answers already accepted from Telegram before the cache closes.
	if telegramHandler != nil {
		drainCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		if err := telegramHandler.Wait(drainCtx); err != nil {
			logger.Warnf(ctx, "Telegram updates still in flight at shutdown: %v", err)
		}
		cancel()
	}

	if runErr != nil {
		logger.Error(ctx, "Failed to run server: ", runErr)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func initTelegram(ctx context.Context, logger log.Logger, cfg config.TelegramConfig, application *app.App) tgDelivery.Handler {
	bot, err := telegram.New(telegram.Config{Token: cfg.BotToken})
	if err != nil {
		logger.Warnf(ctx, "Telegram disabled: %v", err)
		return nil
	}

	// Register webhook: auto-detect ngrok or fallback to manual config
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, ngrokAPIBase)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + telegramWebhook
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL != "" {
		if whErr := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	return tgDelivery.New(logger, application.Concierge, bot, cfg.SecretToken)
}
