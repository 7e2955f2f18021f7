package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap_DropsLowerCaseKeys(t *testing.T) {
	s := FromMap(map[string]string{
		"DATABASE_URI": "sqlite:///corpus.db",
		"scratch":      "dropped",
		"Mixed_Key":    "dropped",
	})

	assert.Equal(t, "sqlite:///corpus.db", s.DatabaseURI())
	assert.False(t, s.Has("scratch"))
	assert.False(t, s.Has("Mixed_Key"))
}

func TestFromMap_AppliesPathDefaults(t *testing.T) {
	s := FromMap(map[string]string{KeyDataPath: "/data"})

	assert.Equal(t, filepath.Join("/data", "lang", "roots.yml"), s.Get(KeyRoots))
	assert.Equal(t, filepath.Join("/data", "lang", "verbs.csv"), s.Get(KeyVerbs))
	assert.Equal(t, filepath.Join("/data", "lang", "enums.yml"), s.Get(KeyEnums))

	for _, key := range PathKeys() {
		assert.True(t, s.Has(key), "expected a default for %s", key)
	}
}

func TestFromMap_ExplicitPathWins(t *testing.T) {
	s := FromMap(map[string]string{
		KeyDataPath: "/data",
		KeyRoots:    "/elsewhere/roots.yml",
	})

	assert.Equal(t, "/elsewhere/roots.yml", s.Get(KeyRoots))
	assert.Equal(t, filepath.Join("/data", "lang", "verbs.csv"), s.Get(KeyVerbs))
}

func TestFromMap_NoDataPathNoDefaults(t *testing.T) {
	s := FromMap(map[string]string{KeyDatabaseURI: "sqlite:///corpus.db"})

	for _, key := range PathKeys() {
		assert.False(t, s.Has(key), "unexpected default for %s", key)
	}
}

func TestApplyDefaults_AfterLateDataPath(t *testing.T) {
	s := FromMap(map[string]string{})
	s.Set(KeyDataPath, "/data")
	s.ApplyDefaults()

	assert.Equal(t, filepath.Join("/data", "lang", "sandhi.yml"), s.Get(KeySandhi))
}

func TestLogSettings(t *testing.T) {
	s := FromMap(nil)
	assert.Equal(t, DefaultLogLevel, s.LogLevel())
	assert.Equal(t, LogFormatPretty, s.LogFormat())

	s.Set(KeyLogLevel, "DEBUG")
	s.Set(KeyLogFormat, "json")
	assert.Equal(t, "DEBUG", s.LogLevel())
	assert.Equal(t, LogFormatJSON, s.LogFormat())
}

func TestPath_MissingKey(t *testing.T) {
	s := FromMap(nil)

	_, err := s.Path(KeyRoots)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyRoots)
}

func TestDefaultFileName(t *testing.T) {
	assert.Equal(t, "roots.yml", DefaultFileName(KeyRoots))
	assert.Equal(t, "participle-stems.csv", DefaultFileName(KeyParticipleStems))
	assert.Equal(t, "", DefaultFileName("UNKNOWN"))
}
