// Package observability groups the logging, metrics and tracing setup of the
// back office.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus collectors and recorders
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
