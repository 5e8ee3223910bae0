// Package issue provides the normalized, serializable record of one
// accessibility audit finding.
//
// An Issue is built from a raw audit.Issue while the audit pass is still
// running. All element values are copied at that point, so the record stays
// valid after the host element is gone and can be handed to another
// goroutine for reporting.
//
// Example usage:
//
//	handler := audit.HandlerFunc(func(raw audit.Issue) bool {
//		issues = append(issues, issue.New(raw, audit.DefaultPlatform))
//		return true
//	})
package issue
