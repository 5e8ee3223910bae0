// Package audit describes the host accessibility audit capability that a
// Checker drives.
//
// The audit engine itself lives in the host UI-testing framework. This package
// only models how it is consumed:
//
//   - Application runs one audit pass over a screen and calls a Handler once
//     per raised Issue.
//   - A Handler returns true to claim the issue, which stops the host from
//     failing the test on its own.
//   - AuditType is the bit set of categories an issue belongs to; a Platform
//     maps it to tag names in a fixed declared order.
//   - Executor runs the pass on the execution context that owns the UI handle.
//
// Raw issues and elements are only valid during the pass. Callers that need
// the data afterwards must copy it out, which is what package issue does.
package audit
