package audit

import "context"

// Element is the UI element an audit issue was raised against.
// Its values may only be read on the executor that owns the UI handle.
type Element interface {
	// Description is the host's debug description of the element.
	Description() string

	// Identifier is the accessibility identifier, empty if unset.
	Identifier() string

	// Label is the accessibility label, empty if unset.
	Label() string
}

// Issue is a single raw finding raised by the host audit engine.
type Issue interface {
	CompactDescription() string
	DetailedDescription() string
	AuditType() AuditType

	// Element returns the element the issue refers to. ok is false when the
	// issue is not tied to an element.
	Element() (el Element, ok bool)
}

// Handler receives raw issues during an audit pass.
type Handler interface {
	// HandleIssue is called once per raised issue, in detection order.
	// Returning true claims the issue so the host does not fail the test.
	HandleIssue(issue Issue) bool
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(issue Issue) bool

// HandleIssue calls f(issue).
func (f HandlerFunc) HandleIssue(issue Issue) bool {
	return f(issue)
}

// Application is the screen or application under test. Implementations wrap
// the host framework's accessibility audit.
type Application interface {
	// PerformAccessibilityAudit audits the current screen for the given
	// categories, calling h for every issue before returning.
	PerformAccessibilityAudit(ctx context.Context, types AuditType, h Handler) error
}
