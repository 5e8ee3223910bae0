package stark_test

import (
	"context"
	"errors"
	"fmt"
	"os"

	stark "github.com/getstark/stark-accessibility-go"
	"github.com/getstark/stark-accessibility-go/audit"
	"github.com/getstark/stark-accessibility-go/audit/audittest"
	"github.com/getstark/stark-accessibility-go/report"
)

func ExampleChecker_AuditScreen() {
	app := &audittest.Application{
		Issues: []*audittest.Issue{
			{
				Compact:  "Hit region too small",
				Detailed: "The close button is 20x20pt; the minimum is 44x44pt.",
				Types:    audit.AuditTypeHitRegion,
				Elem:     &audittest.Element{Desc: "Button", ID: "close", Text: "Close"},
			},
		},
	}

	checker := stark.NewChecker("project-token",
		stark.WithReporter(report.NewConsoleReporter(os.Stdout)),
		stark.WithPlatform(audit.Touch),
	)

	err := checker.AuditScreen(context.Background(), app, "Home", true)

	var a11y *stark.AccessibilityError
	if errors.As(err, &a11y) {
		fmt.Println(a11y)
		fmt.Println(a11y.Details())
	}
	// Output:
	// --- Home: Found 1 Accessibility Issue(s) ---
	//
	// Issue #1:
	//   Detailed Description: The close button is 20x20pt; the minimum is 44x44pt.
	//   Compact Description: Hit region too small
	//   Audit Type: hitRegion
	//   Element Description: Button
	//   Element Label: Close
	//   Element Identifier: close
	// ---
	//
	// --- End of Accessibility Issues ---
	// accessibility audit found 1 issue(s)
	// - The close button is 20x20pt; the minimum is 44x44pt.
}
