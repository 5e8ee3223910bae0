package report

import (
	"context"

	"github.com/getstark/stark-accessibility-go/issue"
	"github.com/getstark/stark-accessibility-go/version"
)

// Reporter sends the issues collected by one audit pass.
// Implementations must not block on network completion and must never
// surface delivery failures to the caller.
type Reporter interface {
	Send(ctx context.Context, results []issue.Issue, scanName string)
}

// Payload is the report envelope accepted by the collector.
type Payload struct {
	// Version is the library version, independent of the HTTP protocol.
	Version string      `json:"version"`
	Data    PayloadData `json:"data"`
}

// PayloadData carries one scan's results.
type PayloadData struct {
	Name    string        `json:"name"`
	Results []issue.Issue `json:"results"`
}

// NewPayload builds the payload for a scan. Results keep their order; a nil
// slice is sent as an empty array.
func NewPayload(scanName string, results []issue.Issue) Payload {
	if results == nil {
		results = []issue.Issue{}
	}
	return Payload{
		Version: version.Current,
		Data: PayloadData{
			Name:    scanName,
			Results: results,
		},
	}
}
