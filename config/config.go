// Package config loads stark.yaml configuration files.
// A configuration file lets a test suite share the project token, collector
// endpoint and audit settings instead of repeating them in every test.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/getstark/stark-accessibility-go/audit"
	"github.com/getstark/stark-accessibility-go/report"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration file that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// FileNames are the names searched for when loading from a directory.
var FileNames = []string{"stark.yaml", "stark.yml"}

// Config represents a stark.yaml file.
//
// Example:
//
//	project_token: sk_live_...
//	api_url: https://app.getstark.co/api/automated-scan/result/ios
//	platform: touch
//	timeout: 15s
//	audit_types: [contrast, hitRegion, dynamicType]
type Config struct {
	// ProjectToken authenticates reports with the Stark project. Required.
	ProjectToken string `yaml:"project_token"`

	// APIURL is the collector endpoint. STARK_API_URL still takes precedence.
	APIURL string `yaml:"api_url,omitempty"`

	// Platform selects the audit tag table: "touch" or "desktop".
	// Default: the build target's platform.
	Platform string `yaml:"platform,omitempty"`

	// Timeout bounds each report request.
	// Format: Go duration string (e.g., "10s")
	// Default: 10s
	Timeout string `yaml:"timeout,omitempty"`

	// AuditTypes restricts the audit to these categories.
	// Default: all categories.
	AuditTypes []string `yaml:"audit_types,omitempty"`
}

// GetTimeout parses the timeout string and returns a duration.
// Returns the default value if not set or invalid.
func (c *Config) GetTimeout() time.Duration {
	if c == nil || c.Timeout == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetPlatform returns the configured platform or audit.DefaultPlatform.
func (c *Config) GetPlatform() (audit.Platform, error) {
	if c == nil || c.Platform == "" {
		return audit.DefaultPlatform, nil
	}
	return audit.ParsePlatform(c.Platform)
}

// GetAuditTypes returns the union of the configured categories, or
// audit.AuditTypeAll if none are configured.
func (c *Config) GetAuditTypes() (audit.AuditType, error) {
	if c == nil || len(c.AuditTypes) == 0 {
		return audit.AuditTypeAll, nil
	}
	platform, err := c.GetPlatform()
	if err != nil {
		return 0, err
	}

	var types audit.AuditType
	for _, name := range c.AuditTypes {
		t, err := platform.ParseAuditType(name)
		if err != nil {
			return 0, err
		}
		types |= t
	}
	return types, nil
}

// GetEndpoint returns the configured endpoint, or nil if none is set.
func (c *Config) GetEndpoint() (*url.URL, error) {
	if c == nil || c.APIURL == "" {
		return nil, nil
	}
	return report.ParseEndpoint(c.APIURL)
}

// Validate checks that the configuration can be used to build a checker.
func (c *Config) Validate() error {
	if c.ProjectToken == "" {
		return fmt.Errorf("%w: project_token is required", ErrInvalidConfig)
	}
	if _, err := c.GetEndpoint(); err != nil {
		return fmt.Errorf("%w: api_url: %v", ErrInvalidConfig, err)
	}
	if _, err := c.GetPlatform(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.GetAuditTypes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("%w: timeout %q is not a positive duration", ErrInvalidConfig, c.Timeout)
		}
	}
	return nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads and parses a stark.yaml file from the given path.
// If the path is a directory, it looks for one of FileNames in that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		configPath = ""
		for _, name := range FileNames {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				configPath = candidate
				break
			}
		}
		if configPath == "" {
			return nil, fmt.Errorf("no stark.yaml or stark.yml found in %s", path)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return config, nil
}

// LoadFromDir searches for stark.yaml starting from the given directory
// and walking up to parent directories until found or root is reached.
// A file that exists but is invalid stops the search.
func LoadFromDir(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		config, err := Load(absDir)
		if err == nil {
			return config, nil
		}
		if errors.Is(err, ErrInvalidConfig) {
			return nil, err
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return nil, fmt.Errorf("no stark.yaml found in %s or parent directories", dir)
		}
		absDir = parent
	}
}

// LoadFromCurrentDir loads stark.yaml from the current working directory or
// one of its parents.
func LoadFromCurrentDir() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadFromDir(cwd)
}
