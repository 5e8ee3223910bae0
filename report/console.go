package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/getstark/stark-accessibility-go/issue"
)

// ConsoleReporter prints issues as plain text. It is useful when working
// locally without a project token.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter returns a reporter writing to w, or to stdout if w is nil.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{w: w}
}

// Send writes every issue to the underlying writer. Write errors are ignored.
func (c *ConsoleReporter) Send(_ context.Context, results []issue.Issue, scanName string) {
	if scanName != "" {
		fmt.Fprintf(c.w, "--- %s: Found %d Accessibility Issue(s) ---\n", scanName, len(results))
	} else {
		fmt.Fprintf(c.w, "--- Found %d Accessibility Issue(s) ---\n", len(results))
	}

	for i, iss := range results {
		fmt.Fprintf(c.w, "\nIssue #%d:\n", i+1)
		fmt.Fprintf(c.w, "  Detailed Description: %s\n", iss.DetailedDescription())
		fmt.Fprintf(c.w, "  Compact Description: %s\n", iss.CompactDescription())
		fmt.Fprintf(c.w, "  Audit Type: %s\n", iss.AuditType())
		fmt.Fprintf(c.w, "  Element Description: %s\n", orNA(iss.ElementDescription()))
		fmt.Fprintf(c.w, "  Element Label: %s\n", orNA(iss.ElementLabel()))
		fmt.Fprintf(c.w, "  Element Identifier: %s\n", orNA(iss.ElementIdentifier()))
		fmt.Fprintln(c.w, "---")
	}

	fmt.Fprintln(c.w, "\n--- End of Accessibility Issues ---")
}

func orNA(s string, ok bool) string {
	if !ok {
		return "N/A"
	}
	return s
}
