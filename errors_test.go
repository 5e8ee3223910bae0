package stark

import (
	"errors"
	"fmt"
	"testing"

	"github.com/getstark/stark-accessibility-go/audit"
	"github.com/getstark/stark-accessibility-go/audit/audittest"
	"github.com/getstark/stark-accessibility-go/issue"
	"github.com/stretchr/testify/assert"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrIssuesFound", ErrIssuesFound, "accessibility issues found"},
		{"ErrAuditFailed", ErrAuditFailed, "accessibility audit failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessibilityError(t *testing.T) {
	issues := []issue.Issue{
		issue.New(&audittest.Issue{Detailed: "Contrast ratio 2:1", Types: audit.AuditTypeContrast}, audit.Touch),
		issue.New(&audittest.Issue{Detailed: "Text is clipped", Types: audit.AuditTypeTextClipped}, audit.Touch),
	}
	err := &AccessibilityError{ScanName: "Home", Issues: issues}

	assert.Equal(t, "accessibility audit found 2 issue(s)", err.Error())
	assert.Equal(t, "- Contrast ratio 2:1\n- Text is clipped", err.Details())
}

func TestAccessibilityError_Is(t *testing.T) {
	var err error = &AccessibilityError{}
	wrapped := fmt.Errorf("screen Home: %w", err)

	assert.True(t, errors.Is(err, ErrIssuesFound))
	assert.True(t, errors.Is(wrapped, ErrIssuesFound))
	assert.False(t, errors.Is(err, ErrAuditFailed))

	var target *AccessibilityError
	assert.True(t, errors.As(wrapped, &target))
}

func TestAccessibilityError_EmptyDetails(t *testing.T) {
	err := &AccessibilityError{}
	assert.Equal(t, "accessibility audit found 0 issue(s)", err.Error())
	assert.Equal(t, "", err.Details())
}
