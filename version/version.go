// Package version holds the library version reported to the Stark collector.
package version

const (
	// Current is the semantic version of the library. It is sent as the
	// payload schema version and in the User-Agent header.
	Current = "0.0.1"

	// Build is incremented with each release build.
	Build = "1"

	// Full combines Current and Build as semver build metadata.
	Full = Current + "+" + Build

	// Product is the client name presented to the collector.
	Product = "StarkAccessibilityIOS"

	// UserAgent is the User-Agent header value for report requests.
	UserAgent = Product + "/" + Current
)
