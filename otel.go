package stark

import (
	"context"
	"fmt"

	"github.com/getstark/stark-accessibility-go/issue"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

// auditMetrics holds the instruments recorded for every audit pass.
type auditMetrics struct {
	// passes counts audit passes by outcome
	passes metric.Int64Counter

	// issues counts normalized issues by audit type
	issues metric.Int64Counter
}

func newAuditMetrics(meter metric.Meter) (*auditMetrics, error) {
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("stark")
	}

	m := &auditMetrics{}
	var err error

	m.passes, err = meter.Int64Counter(
		"stark.audit.passes",
		metric.WithDescription("Accessibility audit passes performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create passes counter: %w", err)
	}

	m.issues, err = meter.Int64Counter(
		"stark.audit.issues",
		metric.WithDescription("Accessibility issues found, by audit type"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create issues counter: %w", err)
	}

	return m, nil
}

func (m *auditMetrics) recordPass(ctx context.Context, outcome string) {
	m.passes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *auditMetrics) recordIssues(ctx context.Context, issues []issue.Issue) {
	for _, iss := range issues {
		m.issues.Add(ctx, 1, metric.WithAttributes(attribute.String("audit_type", iss.AuditType())))
	}
}
