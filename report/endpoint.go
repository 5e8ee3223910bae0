package report

import (
	"fmt"
	"net/url"
)

const (
	// ProductionURL is the Stark collector for automated iOS scans.
	ProductionURL = "https://app.getstark.co/api/automated-scan/result/ios"

	// EnvAPIURL overrides the collector endpoint, typically for development.
	EnvAPIURL = "STARK_API_URL"
)

var productionEndpoint = mustParseEndpoint(ProductionURL)

func mustParseEndpoint(raw string) *url.URL {
	u, err := ParseEndpoint(raw)
	if err != nil {
		panic(fmt.Sprintf("report: invalid production endpoint %q: %v", raw, err))
	}
	return u
}

// ParseEndpoint parses raw as a collector endpoint. It must be an absolute
// URL with a scheme and host.
func ParseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute URL", raw)
	}
	return u, nil
}

// ResolveEndpoint picks the collector endpoint. An EnvAPIURL value that
// parses wins; otherwise fallback is used, or ProductionURL when fallback is
// nil. An unset or malformed override is treated the same way.
//
// lookupEnv is usually os.LookupEnv. The returned URL is a copy.
func ResolveEndpoint(lookupEnv func(string) (string, bool), fallback *url.URL) *url.URL {
	if lookupEnv != nil {
		if raw, ok := lookupEnv(EnvAPIURL); ok {
			if u, err := ParseEndpoint(raw); err == nil {
				return u
			}
		}
	}
	if fallback != nil {
		u := *fallback
		return &u
	}
	u := *productionEndpoint
	return &u
}
