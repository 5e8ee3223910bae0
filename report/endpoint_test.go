package report

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"https", "https://example.com/api/scan", false},
		{"http with port", "http://localhost:8080/result", false},
		{"empty", "", true},
		{"relative path", "/api/scan", true},
		{"no scheme", "example.com/api", true},
		{"bad escape", "http://example.com/%zz", true},
		{"control character", "http://exa\x7fmple.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEndpoint(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	fallback, err := url.Parse("https://staging.example.com/ios")
	require.NoError(t, err)

	tests := []struct {
		name     string
		env      map[string]string
		fallback *url.URL
		want     string
	}{
		{"unset uses production", nil, nil, ProductionURL},
		{"valid override", map[string]string{EnvAPIURL: "http://localhost:3000/api"}, nil, "http://localhost:3000/api"},
		{"invalid override uses production", map[string]string{EnvAPIURL: "not a url"}, nil, ProductionURL},
		{"empty override uses production", map[string]string{EnvAPIURL: ""}, nil, ProductionURL},
		{"unset uses fallback", nil, fallback, "https://staging.example.com/ios"},
		{"override beats fallback", map[string]string{EnvAPIURL: "http://localhost:3000/api"}, fallback, "http://localhost:3000/api"},
		{"invalid override uses fallback", map[string]string{EnvAPIURL: "::"}, fallback, "https://staging.example.com/ios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			got := ResolveEndpoint(lookup, tt.fallback)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveEndpoint_ReturnsCopy(t *testing.T) {
	got := ResolveEndpoint(nil, nil)
	got.Host = "evil.example.com"

	assert.Equal(t, ProductionURL, ResolveEndpoint(nil, nil).String())
}

func TestNewWebAPIReporter_Environment(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "https://dev.getstark.co/api/automated-scan/result/ios")
		r := NewWebAPIReporter("token")
		assert.Equal(t, "https://dev.getstark.co/api/automated-scan/result/ios", r.Endpoint().String())
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "dev server")
		r := NewWebAPIReporter("token")
		assert.Equal(t, ProductionURL, r.Endpoint().String())
	})
}
