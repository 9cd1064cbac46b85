package middleware

import (
	"filmbuff-ai/config"
	"filmbuff-ai/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l        log.Logger
	throttle *clientThrottle
}

// New creates the middleware set. A disabled throttle config turns Throttle into a no-op.
func New(l log.Logger, throttle config.ThrottleConfig) Middleware {
	m := Middleware{l: l}
	if throttle.Enabled && throttle.RequestsPerMin > 0 {
		m.throttle = newClientThrottle(throttle)
	}
	return m
}
