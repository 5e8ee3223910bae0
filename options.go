package stark

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/getstark/stark-accessibility-go/audit"
	"github.com/getstark/stark-accessibility-go/report"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Checker.
type Option func(*checkerConfig)

// checkerConfig holds configuration for a Checker instance.
type checkerConfig struct {
	reporter   report.Reporter
	executor   audit.Executor
	platform   audit.Platform
	auditTypes audit.AuditType

	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter

	// Used only when the default WebAPIReporter is built.
	httpClient *http.Client
	endpoint   *url.URL
}

// WithReporter replaces the default WebAPIReporter, for example with a
// report.ConsoleReporter during local development.
func WithReporter(r report.Reporter) Option {
	return func(c *checkerConfig) {
		c.reporter = r
	}
}

// WithExecutor sets the executor that owns the UI handle.
// Default: audit.Inline.
func WithExecutor(e audit.Executor) Option {
	return func(c *checkerConfig) {
		c.executor = e
	}
}

// WithPlatform selects the audit tag table used to name issue categories.
// Default: audit.DefaultPlatform.
func WithPlatform(p audit.Platform) Option {
	return func(c *checkerConfig) {
		c.platform = p
	}
}

// WithAuditTypes restricts the categories the host audits.
// Default: audit.AuditTypeAll.
func WithAuditTypes(types audit.AuditType) Option {
	return func(c *checkerConfig) {
		c.auditTypes = types
	}
}

// WithLogger sets a custom logger for the checker and its default reporter.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *checkerConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for audit and report spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *checkerConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for audit and report metrics.
func WithMeter(meter metric.Meter) Option {
	return func(c *checkerConfig) {
		c.meter = meter
	}
}

// WithHTTPClient sets the HTTP client of the default reporter.
// It has no effect together with WithReporter.
func WithHTTPClient(client *http.Client) Option {
	return func(c *checkerConfig) {
		c.httpClient = client
	}
}

// WithEndpoint sets the collector endpoint of the default reporter.
// STARK_API_URL still takes precedence. It has no effect together with
// WithReporter.
func WithEndpoint(u *url.URL) Option {
	return func(c *checkerConfig) {
		c.endpoint = u
	}
}
