package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"back-office/internal/handler/http/middleware"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitIdleTimeout     = 10 * time.Minute
)

// Application is a bound HTTP server. The listener is opened by New so the
// port is known before Run, which lets callers configure port 0.
type Application struct {
	container *Container
	logger    *slog.Logger
	limiter   *middleware.RateLimiter
	listener  net.Listener
	server    *http.Server
	port      int
}

// New binds the configured address and builds the handler tree.
func New(c *Container, logger *slog.Logger) (*Application, error) {
	cfg := c.Config.Application

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		extractor, err := middleware.NewIPExtractor(cfg.RateLimit.TrustedProxies)
		if err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, extractor)
		logger.Info("rate limiting initialized",
			slog.Float64("requests_per_second", cfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Int("trusted_proxies", len(cfg.RateLimit.TrustedProxies)))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Address(), err)
	}

	port := 0
	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	return &Application{
		container: c,
		logger:    logger,
		limiter:   limiter,
		listener:  listener,
		port:      port,
		server: &http.Server{
			Handler:           newHandler(c, logger, limiter),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
	}, nil
}

// Port is the TCP port the server listens on.
func (a *Application) Port() int { return a.port }

// Handler returns the full middleware and route tree.
func (a *Application) Handler() http.Handler { return a.server.Handler }

// Run serves until ctx is done, then drains in-flight requests for at most
// the configured shutdown timeout.
func (a *Application) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	// Requests outlive ctx so Shutdown can drain them.
	base := context.WithoutCancel(ctx)
	a.server.BaseContext = func(net.Listener) context.Context { return base }

	g.Go(func() error {
		a.logger.Info("server starting",
			slog.String("addr", a.listener.Addr().String()),
			slog.String("version", a.container.Config.Application.Version))
		if err := a.server.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	if a.limiter != nil {
		g.Go(func() error {
			a.limiter.RunCleanup(gctx, rateLimitCleanupInterval, rateLimitIdleTimeout)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server...")
		return a.Shutdown(context.WithoutCancel(gctx))
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("server stopped")
	return nil
}

// Shutdown stops accepting connections and waits for active requests.
func (a *Application) Shutdown(ctx context.Context) error {
	timeout := a.container.Config.Application.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
