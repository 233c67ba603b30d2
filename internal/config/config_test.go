package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	settings := Defaults()

	assert.Equal(t, "gemini", settings.Provider)
	assert.Equal(t, 1, settings.Parallel)
	assert.Equal(t, "existence", settings.Freshness)
	assert.Equal(t, 10*time.Minute, settings.Timeouts.Transcribe())
	assert.Equal(t, 5*time.Minute, settings.Timeouts.Preprocess())
	assert.Equal(t, 5*time.Minute, settings.Timeouts.Generate())
	assert.Equal(t, "128k", settings.Audio.Bitrate)
	assert.Equal(t, "sqlite", settings.History.Backend)

	assert.NoError(t, settings.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v2b.yaml")
	content := `
provider: openai
parallel: 4
freshness: hash
timeouts:
  transcribe_seconds: 120
audio:
  stages: [mono, resample]
  bitrate: 192k
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", settings.Provider)
	assert.Equal(t, 4, settings.Parallel)
	assert.Equal(t, "hash", settings.Freshness)
	assert.Equal(t, 2*time.Minute, settings.Timeouts.Transcribe())
	assert.Equal(t, []string{"mono", "resample"}, settings.Audio.Stages)
	assert.Equal(t, "192k", settings.Audio.Bitrate)

	// Untouched values keep their defaults.
	assert.Equal(t, 5*time.Minute, settings.Timeouts.Preprocess())
	assert.Equal(t, "sqlite", settings.History.Backend)
}

func TestLoadRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown_provider",
			content: "provider: acme\n",
		},
		{
			name:    "parallel_out_of_range",
			content: "parallel: 99\n",
		},
		{
			name:    "unknown_freshness_mode",
			content: "freshness: psychic\n",
		},
		{
			name:    "unknown_audio_stage",
			content: "audio:\n  stages: [reverb]\n  bitrate: 128k\n",
		},
		{
			name:    "postgres_without_dsn",
			content: "history:\n  backend: postgres\n",
		},
		{
			name:    "malformed_yaml",
			content: "provider: [unclosed\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "v2b.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestHistoryPath(t *testing.T) {
	settings := Defaults()
	settings.Workspace = "/srv/voice"
	assert.Equal(t, filepath.Join("/srv/voice", "data", "v2b.db"), settings.HistoryPath())

	settings.History.Path = "/var/lib/v2b/history.db"
	assert.Equal(t, "/var/lib/v2b/history.db", settings.HistoryPath())
}
