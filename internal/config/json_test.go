package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects_file":"/srv/projects.jsonl","log_file":"-"}`), 0o600))

	t.Run("overlays present keys only", func(t *testing.T) {
		withArgs(t, "testbin", "-config", path)

		cfg := defaults()
		parseJson(&cfg)

		assert.Equal(t, "/srv/projects.jsonl", cfg.ProjectsFile)
		assert.Equal(t, LogFileStderr, cfg.LogFile)
		assert.Equal(t, "users.jsonl", cfg.UsersFile)
		assert.Equal(t, StorageFile, cfg.Storage)
	})

	t.Run("no flag leaves config unchanged", func(t *testing.T) {
		withArgs(t, "testbin", "-s", "sqlite")

		cfg := defaults()
		parseJson(&cfg)

		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		withArgs(t, "testbin", "-c", bad)

		cfg := defaults()
		require.Panics(t, func() { parseJson(&cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		withArgs(t, "testbin", "-c", filepath.Join(dir, "absent.json"))

		cfg := defaults()
		require.Panics(t, func() { parseJson(&cfg) })
	})
}
