// Package middleware holds the security middleware of the HTTP server:
// Content-Security-Policy headers and per-client rate limiting.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"back-office/pkg/security/csp"
)

// CSPConfig selects a policy by path prefix. The longest matching prefix
// wins; Default applies when none matches.
type CSPConfig struct {
	Enabled      bool
	Default      csp.Policy
	PathPolicies map[string]csp.Policy
	ReportOnly   bool
}

// CSP sets the selected policy header on every response.
func CSP(cfg CSPConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			policy := selectPolicy(cfg, r.URL.Path)
			if cfg.ReportOnly {
				policy = policy.ReportOnly(true)
			}
			if value := policy.String(); value != "" {
				w.Header().Set(policy.HeaderName(), value)
				slog.Debug("CSP header applied",
					slog.String("path", r.URL.Path),
					slog.String("header", policy.HeaderName()))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func selectPolicy(cfg CSPConfig, path string) csp.Policy {
	longest := ""
	policy := cfg.Default
	for prefix, p := range cfg.PathPolicies {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
			policy = p
		}
	}
	return policy
}
