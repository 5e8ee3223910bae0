// Package audittest provides in-memory implementations of the audit
// capability for tests that have no host UI framework available.
package audittest

import (
	"context"
	"sync"

	"github.com/getstark/stark-accessibility-go/audit"
)

// Element is a fixed audit.Element.
type Element struct {
	Desc string
	ID   string
	Text string
}

func (e *Element) Description() string { return e.Desc }
func (e *Element) Identifier() string  { return e.ID }
func (e *Element) Label() string       { return e.Text }

// Issue is a fixed audit.Issue. A nil Elem means the issue has no element.
type Issue struct {
	Compact  string
	Detailed string
	Types    audit.AuditType
	Elem     *Element
}

func (i *Issue) CompactDescription() string  { return i.Compact }
func (i *Issue) DetailedDescription() string { return i.Detailed }
func (i *Issue) AuditType() audit.AuditType  { return i.Types }

func (i *Issue) Element() (audit.Element, bool) {
	if i.Elem == nil {
		return nil, false
	}
	return i.Elem, true
}

// Application replays a fixed list of issues on every audit pass.
type Application struct {
	Issues []*Issue

	// Err, if set, is returned after all issues were delivered.
	Err error

	mu        sync.Mutex
	calls     int
	requested []audit.AuditType
	claimed   []bool
}

// PerformAccessibilityAudit implements audit.Application. Only issues whose
// categories intersect types are delivered.
func (a *Application) PerformAccessibilityAudit(ctx context.Context, types audit.AuditType, h audit.Handler) error {
	a.mu.Lock()
	a.calls++
	a.requested = append(a.requested, types)
	a.mu.Unlock()

	for _, iss := range a.Issues {
		if err := ctx.Err(); err != nil {
			return err
		}
		if iss.Types != 0 && iss.Types&types == 0 {
			continue
		}
		claimed := h.HandleIssue(iss)

		a.mu.Lock()
		a.claimed = append(a.claimed, claimed)
		a.mu.Unlock()
	}
	return a.Err
}

// Calls returns the number of audit passes performed.
func (a *Application) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// Requested returns the category sets passed to each audit pass.
func (a *Application) Requested() []audit.AuditType {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]audit.AuditType(nil), a.requested...)
}

// Claimed returns the handler's return value for every delivered issue.
func (a *Application) Claimed() []bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]bool(nil), a.claimed...)
}
