package app

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	hhttp "back-office/internal/handler/http"
	harticle "back-office/internal/handler/http/article"
	hauth "back-office/internal/handler/http/auth"
	"back-office/internal/handler/http/middleware"
	"back-office/internal/handler/http/requestid"
	"back-office/internal/infra/view"
	"back-office/internal/observability/tracing"
	"back-office/pkg/security/csp"
)

// routes registers every endpoint. The /api tree is rate limited when
// limiter is not nil.
func routes(c *Container, limiter *middleware.RateLimiter) *http.ServeMux {
	apiMux := http.NewServeMux()
	harticle.RegisterAPI(apiMux, c.APIGetArticle(), c.APIStoreArticle())

	adminMux := http.NewServeMux()
	harticle.RegisterWeb(adminMux, c.WebGetArticle())
	hauth.Register(adminMux, c.ShowLogin())
	adminMux.HandleFunc("GET /admin/health-check", hhttp.HealthCheck)

	health := &hhttp.HealthHandler{DB: c.DB, Version: c.Config.Application.Version}
	if c.Breaker != nil {
		health.Breaker = c.Breaker
	}

	var api http.Handler = apiMux
	if limiter != nil {
		api = limiter.Middleware(api)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("/api/", api)
	rootMux.Handle("/admin/", adminMux)
	rootMux.Handle("GET /health", health)
	rootMux.Handle("GET /metrics", hhttp.MetricsHandler())
	rootMux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	rootMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(view.Static())))
	return rootMux
}

// cspConfig serves the strict API policy by default and relaxes it for the
// admin pages and the Swagger UI.
func cspConfig(reportOnly bool) middleware.CSPConfig {
	return middleware.CSPConfig{
		Enabled: true,
		Default: csp.APIPolicy(),
		PathPolicies: map[string]csp.Policy{
			"/admin/":   csp.AdminPolicy(),
			"/swagger/": csp.SwaggerUIPolicy(),
		},
		ReportOnly: reportOnly,
	}
}

// newHandler wraps the router with the middleware chain, outermost first:
// request id, tracing, logging, metrics, recovery, input limits, timeout and
// CSP headers.
func newHandler(c *Container, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	app := c.Config.Application
	return hhttp.Chain(routes(c, limiter),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Metrics,
		hhttp.Recover,
		hhttp.InputValidation(app.MaxBodyBytes),
		hhttp.Timeout(app.RequestTimeout),
		middleware.CSP(cspConfig(app.CSPReportOnly)),
	)
}
