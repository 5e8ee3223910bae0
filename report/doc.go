// Package report delivers normalized accessibility issues to the Stark
// collector.
//
// WebAPIReporter batches the issues of one audit pass into a versioned
// Payload and PUTs it to the collection endpoint. Sending is fire-and-forget:
// Send returns as soon as the request is dispatched, and the outcome is only
// logged. There is no retry, and a failed report never reaches the caller.
//
// # Endpoint
//
// The endpoint is resolved once, when the reporter is built:
//
//  1. STARK_API_URL, if it holds a valid absolute URL
//  2. the endpoint passed with WithEndpoint
//  3. ProductionURL
//
// # Wire format
//
//	PUT <endpoint>
//	Content-Type: application/json
//	Authorization: Bearer <project token>
//	User-Agent: StarkAccessibilityIOS/<version>
//
//	{"version": "0.0.1", "data": {"name": "Home", "results": [...]}}
//
// ConsoleReporter prints the same issues for local debugging.
package report
