package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable the loader reads so ambient
// configuration cannot leak into a test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := append([]string{KeyDatabaseURI, KeyDataPath, KeyLogLevel, KeyLogFormat}, PathKeys()...)
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestFromEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	s, err := FromEnv()
	require.NoError(t, err)

	assert.False(t, s.Has(KeyDatabaseURI))
	for _, key := range PathKeys() {
		assert.False(t, s.Has(key), "unexpected value for %s", key)
	}
}

func TestFromEnv_PathDefaultsFromDataPath(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DATA_PATH", "/srv/corpus")
	t.Setenv("ROOTS", "/srv/override/roots.yml")

	s, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/srv/corpus", s.DataPath())
	assert.Equal(t, "/srv/override/roots.yml", s.Get(KeyRoots))
	assert.Equal(t, filepath.Join("/srv/corpus", "lang", "verbs.csv"), s.Get(KeyVerbs))
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("KOSHA_DATA_PATH", "/srv/corpus")

	e, err := LoadFromEnvWithPrefix("KOSHA")
	require.NoError(t, err)
	assert.Equal(t, "/srv/corpus", e.DataPath)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.env")
	content := "DATABASE_URI=sqlite:///corpus.db\nDATA_PATH=/srv/corpus\nLOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite:///corpus.db", s.DatabaseURI())
	assert.Equal(t, "DEBUG", s.LogLevel())
	assert.Equal(t, filepath.Join("/srv/corpus", "lang", "enums.yml"), s.Get(KeyEnums))
}

func TestFromFile_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.env")

	_, err := FromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_PrefersSettingsFile(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DATA_PATH", "/from-env")

	path := filepath.Join(t.TempDir(), "settings.env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_PATH=/from-file\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from-file", s.DataPath())
}
