package lingo

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Reloader periodically re-runs LoadNamespaces for the engine's current
// locale, so translation updates published by the namespace sources roll
// out without a restart.
type Reloader struct {
	engine  *Engine
	cron    *cron.Cron
	log     *slog.Logger
	timeout time.Duration
}

// ReloaderOption configures the reloader.
type ReloaderOption func(*Reloader)

// WithReloaderLogger sets the logger reload outcomes are reported to.
func WithReloaderLogger(log *slog.Logger) ReloaderOption {
	return func(r *Reloader) {
		if log != nil {
			r.log = log
		}
	}
}

// WithReloadTimeout bounds a single reload run.
// Default: 1 minute.
func WithReloadTimeout(d time.Duration) ReloaderOption {
	return func(r *Reloader) {
		r.timeout = d
	}
}

// NewReloader creates a reloader firing on the given cron schedule
// (standard 5-field syntax, or descriptors like "@every 10m").
func NewReloader(e *Engine, schedule string, opts ...ReloaderOption) (*Reloader, error) {
	if e == nil {
		return nil, ErrNilEngine
	}

	r := &Reloader{
		engine:  e,
		cron:    cron.New(),
		log:     e.log,
		timeout: time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := r.cron.AddFunc(schedule, r.reload); err != nil {
		return nil, err
	}

	return r, nil
}

// Start begins scheduling reloads in a background goroutine.
func (r *Reloader) Start() {
	r.cron.Start()
}

// Stop stops scheduling and waits for an in-flight reload to finish.
func (r *Reloader) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reloader) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	locale := r.engine.Locale()
	result, err := r.engine.LoadNamespaces(ctx, locale)
	if err != nil {
		r.log.Error("translation reload failed",
			slog.String("locale", locale), slog.String("error", err.Error()))
		return
	}

	if len(result.Failed) > 0 {
		r.log.Warn("translation reload finished with failures",
			slog.String("locale", locale), slog.Int("failed", len(result.Failed)))
	}
}
