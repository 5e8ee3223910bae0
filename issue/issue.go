package issue

import (
	"encoding/json"

	"github.com/getstark/stark-accessibility-go/audit"
)

// Issue is an accessibility finding detached from the host UI.
// It is immutable; the zero value describes an issue with no element.
type Issue struct {
	compactDescription  string
	detailedDescription string
	elementDescription  *string
	auditType           string
	elementIdentifier   *string
	elementLabel        *string
}

// New normalizes a raw audit issue. Audit categories are rendered with the
// platform's tag table. Empty element identifiers and labels become absent.
//
// New reads the raw issue and its element, so it must run on the executor
// that owns the UI handle.
func New(raw audit.Issue, platform audit.Platform) Issue {
	iss := Issue{
		compactDescription:  raw.CompactDescription(),
		detailedDescription: raw.DetailedDescription(),
		auditType:           platform.Describe(raw.AuditType()),
	}

	if el, ok := raw.Element(); ok && el != nil {
		desc := el.Description()
		iss.elementDescription = &desc
		iss.elementIdentifier = nonEmpty(el.Identifier())
		iss.elementLabel = nonEmpty(el.Label())
	}

	return iss
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CompactDescription is the short summary of the issue.
func (i Issue) CompactDescription() string { return i.compactDescription }

// DetailedDescription is the full explanation of the issue.
func (i Issue) DetailedDescription() string { return i.detailedDescription }

// AuditType is the comma-joined category tags, or audit.UnknownType.
func (i Issue) AuditType() string { return i.auditType }

// ElementDescription returns the element description, if the issue had an element.
func (i Issue) ElementDescription() (string, bool) { return deref(i.elementDescription) }

// ElementIdentifier returns the element's accessibility identifier, if non-empty.
func (i Issue) ElementIdentifier() (string, bool) { return deref(i.elementIdentifier) }

// ElementLabel returns the element's accessibility label, if non-empty.
func (i Issue) ElementLabel() (string, bool) { return deref(i.elementLabel) }

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

// wireIssue is the JSON shape expected by the collector. Absent values
// serialize as null.
type wireIssue struct {
	CompactDescription  string  `json:"compactDescription"`
	DetailedDescription string  `json:"detailedDescription"`
	ElementDescription  *string `json:"elementDescription"`
	AuditType           string  `json:"auditType"`
	ElementIdentifier   *string `json:"elementIdentifier"`
	ElementLabel        *string `json:"elementLabel"`
}

// MarshalJSON implements json.Marshaler.
func (i Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireIssue{
		CompactDescription:  i.compactDescription,
		DetailedDescription: i.detailedDescription,
		ElementDescription:  i.elementDescription,
		AuditType:           i.auditType,
		ElementIdentifier:   i.elementIdentifier,
		ElementLabel:        i.elementLabel,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Issue) UnmarshalJSON(data []byte) error {
	var w wireIssue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = Issue{
		compactDescription:  w.CompactDescription,
		detailedDescription: w.DetailedDescription,
		elementDescription:  w.ElementDescription,
		auditType:           w.AuditType,
		elementIdentifier:   w.ElementIdentifier,
		elementLabel:        w.ElementLabel,
	}
	return nil
}
