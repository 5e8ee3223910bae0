package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/getstark/stark-accessibility-go/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
project_token: tok-123
api_url: http://localhost:4000/api/automated-scan/result/ios
platform: desktop
timeout: 3s
audit_types: [contrast, parentChild]
`))
	require.NoError(t, err)

	assert.Equal(t, "tok-123", cfg.ProjectToken)
	assert.Equal(t, 3*time.Second, cfg.GetTimeout())

	platform, err := cfg.GetPlatform()
	require.NoError(t, err)
	assert.Equal(t, "desktop", platform.Name)

	types, err := cfg.GetAuditTypes()
	require.NoError(t, err)
	assert.Equal(t, audit.AuditTypeContrast|audit.AuditTypeParentChild, types)

	endpoint, err := cfg.GetEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api/automated-scan/result/ios", endpoint.String())
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("project_token: tok\n"))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.GetTimeout())

	platform, err := cfg.GetPlatform()
	require.NoError(t, err)
	assert.Equal(t, audit.DefaultPlatform.Name, platform.Name)

	types, err := cfg.GetAuditTypes()
	require.NoError(t, err)
	assert.Equal(t, audit.AuditTypeAll, types)

	endpoint, err := cfg.GetEndpoint()
	require.NoError(t, err)
	assert.Nil(t, endpoint)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "project_token: [unterminated"},
		{"missing token", "platform: touch\n"},
		{"unknown platform", "project_token: t\nplatform: tv\n"},
		{"audit type not on platform", "project_token: t\nplatform: touch\naudit_types: [action]\n"},
		{"relative api url", "project_token: t\napi_url: /api\n"},
		{"bad timeout", "project_token: t\ntimeout: soon\n"},
		{"negative timeout", "project_token: t\ntimeout: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestGetTimeout_NilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, 10*time.Second, cfg.GetTimeout())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stark.yml")
	require.NoError(t, os.WriteFile(path, []byte("project_token: from-file\n"), 0o644))

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.ProjectToken)
	})

	t.Run("directory", func(t *testing.T) {
		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.ProjectToken)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})
}

func TestLoadFromDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "stark.yaml"), []byte("project_token: root\n"), 0o644))
	nested := filepath.Join(root, "UITests", "Screens")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := LoadFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.ProjectToken)
}

func TestLoadFromDir_InvalidStopsSearch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "stark.yaml"), []byte("project_token: root\n"), 0o644))
	child := filepath.Join(root, "child")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(child, "stark.yaml"), []byte("platform: touch\n"), 0o644))

	_, err := LoadFromDir(child)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFromCurrentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stark.yaml"), []byte("project_token: cwd\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromCurrentDir()
	require.NoError(t, err)
	assert.Equal(t, "cwd", cfg.ProjectToken)
}
