package report

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/getstark/stark-accessibility-go/issue"
	"github.com/getstark/stark-accessibility-go/version"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// RequestIDHeader carries a per-report UUID for correlating client logs with
// the collector.
const RequestIDHeader = "X-Request-ID"

// WebAPIReporter sends accessibility reports to the Stark collector with an
// HTTP PUT. It holds only immutable configuration and is safe for concurrent
// use.
type WebAPIReporter struct {
	endpoint     *url.URL
	projectToken string

	client  *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *sendMetrics

	// marshal encodes the payload; replaced in tests.
	marshal func(v any) ([]byte, error)

	// wg tracks in-flight deliveries for Wait.
	wg sync.WaitGroup
}

// WebAPIOption configures a WebAPIReporter.
type WebAPIOption func(*webAPIConfig)

type webAPIConfig struct {
	endpoint  *url.URL
	client    *http.Client
	logger    *slog.Logger
	tracer    trace.Tracer
	meter     metric.Meter
	lookupEnv func(string) (string, bool)
}

// WithEndpoint sets the endpoint used when STARK_API_URL is unset or invalid.
func WithEndpoint(u *url.URL) WebAPIOption {
	return func(c *webAPIConfig) {
		c.endpoint = u
	}
}

// WithHTTPClient sets the HTTP client used for deliveries.
// The default client times out after 10 seconds.
func WithHTTPClient(client *http.Client) WebAPIOption {
	return func(c *webAPIConfig) {
		c.client = client
	}
}

// WithLogger sets the logger that receives delivery outcomes.
func WithLogger(logger *slog.Logger) WebAPIOption {
	return func(c *webAPIConfig) {
		c.logger = logger
	}
}

// WithTracer sets the tracer for delivery spans.
func WithTracer(tracer trace.Tracer) WebAPIOption {
	return func(c *webAPIConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets the meter for delivery metrics.
func WithMeter(meter metric.Meter) WebAPIOption {
	return func(c *webAPIConfig) {
		c.meter = meter
	}
}

// NewWebAPIReporter creates a reporter authenticated with projectToken.
// The endpoint is resolved here and never changes afterwards.
func NewWebAPIReporter(projectToken string, opts ...WebAPIOption) *WebAPIReporter {
	cfg := &webAPIConfig{
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    slog.Default(),
		tracer:    noop.NewTracerProvider().Tracer("stark/report"),
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	metrics, err := newSendMetrics(cfg.meter)
	if err != nil {
		cfg.logger.Warn("failed to create report metrics, using noop", "component", "report", "error", err)
		metrics, _ = newSendMetrics(nil)
	}

	return &WebAPIReporter{
		endpoint:     ResolveEndpoint(cfg.lookupEnv, cfg.endpoint),
		projectToken: projectToken,
		client:       cfg.client,
		logger:       cfg.logger,
		tracer:       cfg.tracer,
		metrics:      metrics,
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
	}
}

// Endpoint returns a copy of the resolved collector endpoint.
func (r *WebAPIReporter) Endpoint() *url.URL {
	u := *r.endpoint
	return &u
}

// Send reports results for scanName. The request is built synchronously and
// delivered on a separate goroutine; Send returns without waiting for it.
// Cancelling ctx after Send returns does not abort the delivery.
//
// Encoding and delivery failures are logged and otherwise ignored.
func (r *WebAPIReporter) Send(ctx context.Context, results []issue.Issue, scanName string) {
	logger := r.logger.With("component", "report", "scan_name", scanName)

	body, err := r.marshal(NewPayload(scanName, results))
	if err != nil {
		logger.Error("failed to encode accessibility report", "error", err)
		r.metrics.record(ctx, outcomeEncodeError, 0)
		return
	}

	requestID := uuid.New().String()
	sendCtx := context.WithoutCancel(ctx)

	req, err := http.NewRequestWithContext(sendCtx, http.MethodPut, r.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		logger.Error("failed to create accessibility report request", "error", err)
		r.metrics.record(ctx, outcomeTransportError, 0)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.projectToken)
	req.Header.Set("User-Agent", version.UserAgent)
	req.Header.Set(RequestIDHeader, requestID)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.deliver(req, len(results), logger.With("request_id", requestID))
	}()
}

// deliver performs the request and logs the outcome. It runs on its own
// goroutine and reports to nobody but the logger and metrics.
func (r *WebAPIReporter) deliver(req *http.Request, issueCount int, logger *slog.Logger) {
	ctx, span := r.tracer.Start(req.Context(), "stark.report.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.Int("stark.issue_count", issueCount),
			attribute.String("stark.request_id", req.Header.Get(RequestIDHeader)),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := r.client.Do(req.WithContext(ctx))
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		logger.Error("failed to send accessibility report", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.metrics.record(ctx, outcomeTransportError, elapsed)
		return
	}
	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close resource", "resource", "report HTTP response", "error", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("failed to send accessibility report", "status_code", resp.StatusCode)
		span.SetStatus(codes.Error, resp.Status)
		r.metrics.record(ctx, outcomeHTTPError, elapsed)
		return
	}

	logger.Info("sent accessibility report", "issues", issueCount, "status_code", resp.StatusCode)
	span.SetStatus(codes.Ok, "")
	r.metrics.record(ctx, outcomeSuccess, elapsed)
}

// Wait blocks until every delivery dispatched so far has finished, or ctx is
// done. It is meant for test teardown and process exit; Send never waits.
func (r *WebAPIReporter) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
