// Package stark runs host accessibility audits from UI tests and reports the
// results to Stark.
//
// A Checker drives one audit pass per AuditScreen call. Every issue the host
// raises is claimed, normalized into an issue.Issue and collected in
// detection order. The collected issues are then reported to the Stark
// collector, even when there are none, so the dashboard also records clean
// runs. Reporting never blocks the test and never fails it.
//
// # Getting Started
//
//	checker := stark.NewChecker(os.Getenv("STARK_PROJECT_TOKEN"))
//
//	func TestHomeScreen(t *testing.T) {
//		if err := checker.AuditScreen(ctx, app, "HomeScreen", true); err != nil {
//			var a11y *stark.AccessibilityError
//			if errors.As(err, &a11y) {
//				t.Fatalf("%v\n%s", a11y, a11y.Details())
//			}
//			t.Fatal(err)
//		}
//	}
//
// app is any audit.Application; adapters wrap the host framework's audit.
//
// # Configuration
//
// Settings can come from a stark.yaml file instead of code:
//
//	cfg, err := config.LoadFromDir(".")
//	if err != nil {
//		log.Fatal(err)
//	}
//	checker, err := stark.NewCheckerFromConfig(cfg)
//
// The collector endpoint can be overridden with the STARK_API_URL environment
// variable, which is useful against a development server.
//
// # Threading
//
// Raw issues may only be read on the context that owns the UI handle.
// AuditScreen runs the pass and normalization through the Checker's
// audit.Executor: audit.Inline by default, or an audit.Loop when the UI is
// owned by a dedicated thread.
//
// # Observability
//
// Pass WithLogger, WithTracer and WithMeter to route slog output and
// OpenTelemetry spans and metrics. Without them the Checker logs to
// slog.Default() and uses noop tracing and metrics.
package stark
