package report

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

// Send outcomes recorded on stark.report.sends.
const (
	outcomeSuccess        = "success"
	outcomeHTTPError      = "http_error"
	outcomeTransportError = "transport_error"
	outcomeEncodeError    = "encode_error"
)

// sendMetrics holds the instruments for report delivery.
type sendMetrics struct {
	sends    metric.Int64Counter
	duration metric.Float64Histogram
}

func newSendMetrics(meter metric.Meter) (*sendMetrics, error) {
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("stark/report")
	}

	m := &sendMetrics{}
	var err error

	m.sends, err = meter.Int64Counter(
		"stark.report.sends",
		metric.WithDescription("Accessibility reports dispatched, by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create sends counter: %w", err)
	}

	m.duration, err = meter.Float64Histogram(
		"stark.report.duration",
		metric.WithDescription("Time from dispatch to collector response in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return m, nil
}

func (m *sendMetrics) record(ctx context.Context, outcome string, durationMs float64) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.sends.Add(ctx, 1, attrs)
	if outcome != outcomeEncodeError {
		m.duration.Record(ctx, durationMs, attrs)
	}
}
