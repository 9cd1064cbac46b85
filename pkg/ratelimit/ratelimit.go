// Package ratelimit provides a sliding-window admission limiter.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

const (
	DefaultMaxCalls = 5
	DefaultPeriod   = 60 * time.Second
)

// SlidingWindow admits at most maxCalls within any trailing period.
// All methods are safe for concurrent use.
type SlidingWindow struct {
	mu         sync.Mutex
	maxCalls   int
	period     time.Duration
	timestamps []time.Time
	now        func() time.Time
}

// Option customises a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(w *SlidingWindow) { w.now = now }
}

// New builds a limiter. Non-positive values fall back to the defaults.
func New(maxCalls int, period time.Duration, opts ...Option) *SlidingWindow {
	if maxCalls <= 0 {
		maxCalls = DefaultMaxCalls
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	w := &SlidingWindow{
		maxCalls:   maxCalls,
		period:     period,
		timestamps: make([]time.Time, 0, maxCalls),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// TryAdmit records an admission and returns true when the window has room.
func (w *SlidingWindow) TryAdmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.evict(now)
	if len(w.timestamps) >= w.maxCalls {
		return false
	}
	w.timestamps = append(w.timestamps, now)
	return true
}

// SecondsUntilAvailable reports how long until TryAdmit would succeed.
// It never consumes a slot.
func (w *SlidingWindow) SecondsUntilAvailable() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	live := w.live(now)
	if len(live) < w.maxCalls {
		return 0
	}
	wait := w.period - now.Sub(live[0])
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Remaining reports how many admissions are currently free. It never consumes a slot.
func (w *SlidingWindow) Remaining() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.maxCalls - len(w.live(w.now()))
}

// MaxCalls returns the window capacity.
func (w *SlidingWindow) MaxCalls() int { return w.maxCalls }

// Period returns the window length.
func (w *SlidingWindow) Period() time.Duration { return w.period }

// live returns the timestamps still inside the window without mutating state.
func (w *SlidingWindow) live(now time.Time) []time.Time {
	i := 0
	for i < len(w.timestamps) && now.Sub(w.timestamps[i]) >= w.period {
		i++
	}
	return w.timestamps[i:]
}

func (w *SlidingWindow) evict(now time.Time) {
	live := w.live(now)
	if len(live) == len(w.timestamps) {
		return
	}
	n := copy(w.timestamps, live)
	w.timestamps = w.timestamps[:n]
}
