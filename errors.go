package stark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getstark/stark-accessibility-go/issue"
)

// Sentinel errors returned by AuditScreen.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrIssuesFound indicates the audit found issues and the caller asked
	// to fail on them. The concrete error is an *AccessibilityError.
	ErrIssuesFound = errors.New("accessibility issues found")

	// ErrAuditFailed indicates the host audit could not be performed.
	// The underlying error is wrapped for additional context.
	ErrAuditFailed = errors.New("accessibility audit failed")
)

// AccessibilityError reports the issues found by an audit pass.
//
// Example usage:
//
//	var a11y *stark.AccessibilityError
//	if errors.As(err, &a11y) {
//		t.Log(a11y.Details())
//	}
type AccessibilityError struct {
	// ScanName is the name the audit was reported under.
	ScanName string

	// Issues holds every issue found, in detection order.
	Issues []issue.Issue
}

// Error returns a short summary with the issue count.
func (e *AccessibilityError) Error() string {
	return fmt.Sprintf("accessibility audit found %d issue(s)", len(e.Issues))
}

// Details lists the detailed description of every issue, one per line.
func (e *AccessibilityError) Details() string {
	lines := make([]string, len(e.Issues))
	for i, iss := range e.Issues {
		lines[i] = "- " + iss.DetailedDescription()
	}
	return strings.Join(lines, "\n")
}

// Is reports whether target is ErrIssuesFound.
func (e *AccessibilityError) Is(target error) bool {
	return target == ErrIssuesFound
}
