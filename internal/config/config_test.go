package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "face_directory.json", cfg.Data.Directory)
	assert.Equal(t, "drive_index.json", cfg.Data.Index)
	assert.Equal(t, "faceLookup.jpg", cfg.Data.LookupImage)
	assert.Equal(t, 30*time.Second, cfg.Data.FetchTimeout)
	assert.Equal(t, "drive.google.com", cfg.Drive.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
data:
  directory: https://cdn.example.com/face_directory.json
  fetchTimeout: 5s
logging:
  format: json
metrics:
  enabled: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "https://cdn.example.com/face_directory.json", cfg.Data.Directory)
	assert.Equal(t, "drive_index.json", cfg.Data.Index)
	assert.Equal(t, 5*time.Second, cfg.Data.FetchTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Run("overrides file and defaults", func(t *testing.T) {
		t.Setenv("GALLERY_PORT", "8181")
		t.Setenv("GALLERY_INDEX", "/srv/drive_index.json")
		t.Setenv("GALLERY_LOG_LEVEL", "DEBUG")
		t.Setenv("GALLERY_METRICS_ENABLED", "false")
		t.Setenv("DOMAIN", "photos.example.com")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 8181, cfg.Server.Port)
		assert.Equal(t, "/srv/drive_index.json", cfg.Data.Index)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.False(t, cfg.Metrics.Enabled)
		assert.Equal(t, "photos.example.com", cfg.Server.Domain)
	})

	t.Run("invalid numbers are ignored", func(t *testing.T) {
		t.Setenv("GALLERY_PORT", "eighty")
		t.Setenv("GALLERY_FETCH_TIMEOUT", "soon")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 30*time.Second, cfg.Data.FetchTimeout)
	})

	t.Run("empty lookup image disables it", func(t *testing.T) {
		t.Setenv("GALLERY_LOOKUP_IMAGE", "")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "", cfg.Data.LookupImage)
	})
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("GALLERY_PORT", "70000")
	_, err = Load("")
	assert.Error(t, err)
}
