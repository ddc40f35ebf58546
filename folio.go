// Package folio is the configuration registry of a personal blog and
// portfolio site: site metadata, locale, logo settings and the ordered list
// of social links.
//
// A Registry is built once by New, validated up front, and never mutated.
// Holder swaps whole registries when the config file changes, and App
// serves the current one as read-only JSON for out-of-process consumers
// such as a static site build.
package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	folog "github.com/eringen/folio/internal/log"
)

// App serves the registry API. It wires together the holder, metrics,
// middleware and routes.
type App struct {
	Config  ServerConfig
	Echo    *echo.Echo
	Holder  *Holder
	Metrics *Metrics

	promRegistry *prometheus.Registry
	limiter      *RequestLimiter
	etags        etagCache
	customRoutes []func(*App)
	logger       zerolog.Logger
}

// NewApp loads the configuration and prepares routes. Every integrity
// failure surfaces here, before the listener is opened.
func NewApp(cfg ServerConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:       cfg,
		Echo:         e,
		promRegistry: prometheus.NewRegistry(),
		logger:       folog.WithComponent("server"),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.Holder == nil {
		h, err := NewHolder(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		a.Holder = h
	}
	a.Holder.debounce = cfg.ReloadDebounce

	if cfg.AssetsDir != "" {
		rep, err := CheckAssets(os.DirFS(cfg.AssetsDir), a.Holder.Get())
		if err != nil {
			return nil, err
		}
		for _, w := range rep.Warnings {
			a.logger.Warn().Str("event", "assets.warning").Msg(w)
		}
	}

	a.promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics = NewMetrics(a.promRegistry)
	a.Holder.SetMetrics(a.Metrics)

	if cfg.RateLimit > 0 {
		a.limiter = NewRequestLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Registry returns the registry currently being served.
func (a *App) Registry() *Registry {
	return a.Holder.Get()
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	a.logger.Info().Str("event", "server.start").Str("addr", a.Config.Addr).Msg("serving registry API")
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("folio: serve: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Run serves until ctx is cancelled, watching the config file when
// Config.Watch is set.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(a.Start)
	if a.Config.Watch {
		g.Go(func() error { return a.Holder.Watch(ctx) })
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
