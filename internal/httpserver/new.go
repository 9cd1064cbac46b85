package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	conciergeHTTP "filmbuff-ai/internal/concierge/delivery/http"
	tgDelivery "filmbuff-ai/internal/concierge/delivery/telegram"
	"filmbuff-ai/internal/middleware"
	"filmbuff-ai/pkg/log"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Concierge domain
	conciergeHandler conciergeHTTP.Handler
	telegramHandler  tgDelivery.Handler

	readiness map[string]ReadinessCheck
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	ConciergeHandler conciergeHTTP.Handler
	// TelegramHandler is optional; the webhook route is skipped without it.
	TelegramHandler tgDelivery.Handler

	// Readiness checks run on /ready, keyed by dependency name.
	Readiness map[string]ReadinessCheck
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		shutdownTimeout:  cfg.ShutdownTimeout,
		mw:               cfg.Middleware,
		conciergeHandler: cfg.ConciergeHandler,
		telegramHandler:  cfg.TelegramHandler,
		readiness:        cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conciergeHandler == nil {
		return errors.New("concierge handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
