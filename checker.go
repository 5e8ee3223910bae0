package stark

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getstark/stark-accessibility-go/audit"
	"github.com/getstark/stark-accessibility-go/config"
	"github.com/getstark/stark-accessibility-go/issue"
	"github.com/getstark/stark-accessibility-go/report"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Checker audits screens and reports the issues to Stark.
// A Checker is safe for concurrent use as long as its executor is.
type Checker struct {
	reporter   report.Reporter
	executor   audit.Executor
	platform   audit.Platform
	auditTypes audit.AuditType

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *auditMetrics
}

// NewChecker creates a Checker that reports to Stark with projectToken.
func NewChecker(projectToken string, opts ...Option) *Checker {
	cfg := &checkerConfig{
		executor:   audit.Inline,
		platform:   audit.DefaultPlatform,
		auditTypes: audit.AuditTypeAll,
		logger:     slog.Default(),
		tracer:     noop.NewTracerProvider().Tracer("stark"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.reporter == nil {
		reportOpts := []report.WebAPIOption{
			report.WithLogger(cfg.logger),
			report.WithTracer(cfg.tracer),
			report.WithMeter(cfg.meter),
		}
		if cfg.httpClient != nil {
			reportOpts = append(reportOpts, report.WithHTTPClient(cfg.httpClient))
		}
		if cfg.endpoint != nil {
			reportOpts = append(reportOpts, report.WithEndpoint(cfg.endpoint))
		}
		cfg.reporter = report.NewWebAPIReporter(projectToken, reportOpts...)
	}

	metrics, err := newAuditMetrics(cfg.meter)
	if err != nil {
		cfg.logger.Warn("failed to create audit metrics, using noop", "component", "checker", "error", err)
		metrics, _ = newAuditMetrics(nil)
	}

	return &Checker{
		reporter:   cfg.reporter,
		executor:   cfg.executor,
		platform:   cfg.platform,
		auditTypes: cfg.auditTypes,
		logger:     cfg.logger,
		tracer:     cfg.tracer,
		metrics:    metrics,
	}
}

// NewCheckerFromConfig creates a Checker from a loaded configuration file.
// Options are applied after the file's settings and take precedence.
func NewCheckerFromConfig(cfg *config.Config, opts ...Option) (*Checker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees these succeed.
	platform, _ := cfg.GetPlatform()
	types, _ := cfg.GetAuditTypes()
	endpoint, _ := cfg.GetEndpoint()

	base := []Option{
		WithPlatform(platform),
		WithAuditTypes(types),
		WithHTTPClient(&http.Client{Timeout: cfg.GetTimeout()}),
	}
	if endpoint != nil {
		base = append(base, WithEndpoint(endpoint))
	}

	return NewChecker(cfg.ProjectToken, append(base, opts...)...), nil
}

// Reporter returns the reporter the checker sends results to.
func (c *Checker) Reporter() report.Reporter {
	return c.reporter
}

// AuditScreen performs one accessibility audit of app and reports the issues
// under scanName.
//
// Every issue raised by the host is claimed, so the host never fails the
// test by itself. The results are always reported, including an empty
// result set. Reporting happens in the background and its failures are only
// logged.
//
// When failOnIssues is true and at least one issue was found, AuditScreen
// returns an *AccessibilityError holding all of them. If the host audit
// itself fails, the error wraps ErrAuditFailed and nothing is reported.
func (c *Checker) AuditScreen(ctx context.Context, app audit.Application, scanName string, failOnIssues bool) error {
	ctx, span := c.tracer.Start(ctx, "stark.audit_screen",
		trace.WithAttributes(
			attribute.String("stark.scan_name", scanName),
			attribute.Bool("stark.fail_on_issues", failOnIssues),
		),
	)
	defer span.End()

	logger := c.logger.With("component", "checker", "scan_name", scanName)

	var issues []issue.Issue
	handler := audit.HandlerFunc(func(raw audit.Issue) bool {
		issues = append(issues, issue.New(raw, c.platform))
		// Claim the issue; failing is decided below.
		return true
	})

	var auditErr error
	if err := c.executor.Run(func() {
		auditErr = app.PerformAccessibilityAudit(ctx, c.auditTypes, handler)
	}); err != nil {
		auditErr = err
	}
	if auditErr != nil {
		logger.Error("accessibility audit failed", "error", auditErr)
		span.RecordError(auditErr)
		span.SetStatus(codes.Error, auditErr.Error())
		c.metrics.recordPass(ctx, "error")
		return fmt.Errorf("%w: %w", ErrAuditFailed, auditErr)
	}

	span.SetAttributes(attribute.Int("stark.issue_count", len(issues)))
	c.metrics.recordIssues(ctx, issues)
	logger.Info("accessibility audit completed", "issues", len(issues))

	c.reporter.Send(ctx, issues, scanName)

	if len(issues) > 0 && failOnIssues {
		err := &AccessibilityError{ScanName: scanName, Issues: issues}
		span.SetStatus(codes.Error, err.Error())
		c.metrics.recordPass(ctx, "issues_found")
		return err
	}

	c.metrics.recordPass(ctx, "ok")
	return nil
}
