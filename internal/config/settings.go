// Package config resolves the settings that drive a corpus build: the
// store connection, the data directory, and the path of every resource
// file the pipeline reads.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Core setting keys.
const (
	KeyDatabaseURI = "DATABASE_URI"
	KeyDataPath    = "DATA_PATH"
	KeyLogLevel    = "LOG_LEVEL"
	KeyLogFormat   = "LOG_FORMAT"
)

// Resource path keys. Each one defaults to DATA_PATH/lang/<file> when
// DATA_PATH is set and the key was not supplied explicitly.
const (
	KeyAdjectiveStems      = "ADJECTIVE_STEMS"
	KeyEnums               = "ENUMS"
	KeyGerunds             = "GERUNDS"
	KeyIndeclinables       = "INDECLINABLES"
	KeyInfinitives         = "INFINITIVES"
	KeyIrregularAdjectives = "IRREGULAR_ADJECTIVES"
	KeyIrregularNouns      = "IRREGULAR_NOUNS"
	KeyModifiedRoots       = "MODIFIED_ROOTS"
	KeyNominalEndings      = "NOMINAL_ENDINGS"
	KeyNounStems           = "NOUN_STEMS"
	KeyParticipleStems     = "PARTICIPLE_STEMS"
	KeyPrefixGroups        = "PREFIX_GROUPS"
	KeyPrefixedRoots       = "PREFIXED_ROOTS"
	KeyPronouns            = "PRONOUNS"
	KeyRoots               = "ROOTS"
	KeySandhi              = "SANDHI"
	KeyVerbEndings         = "VERB_ENDINGS"
	KeyVerbPrefixes        = "VERB_PREFIXES"
	KeyVerbStems           = "VERB_STEMS"
	KeyVerbs               = "VERBS"
)

// LogFormat represents the logging output format.
type LogFormat string

// Supported log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// DefaultLogLevel is used when LOG_LEVEL is unset.
const DefaultLogLevel = "INFO"

type pathDefault struct {
	key  string
	file string
}

// pathDefaults lists every resource file the pipeline reads together with
// its conventional file name under DATA_PATH/lang.
var pathDefaults = []pathDefault{
	{KeyAdjectiveStems, "adjective-stems.csv"},
	{KeyEnums, "enums.yml"},
	{KeyGerunds, "gerunds.csv"},
	{KeyIndeclinables, "indeclinables.yml"},
	{KeyInfinitives, "infinitives.csv"},
	{KeyIrregularAdjectives, "irregular-adjectives.yml"},
	{KeyIrregularNouns, "irregular-nouns.yml"},
	{KeyModifiedRoots, "modified-roots.yml"},
	{KeyNominalEndings, "nominal-endings.yml"},
	{KeyNounStems, "noun-stems.csv"},
	{KeyParticipleStems, "participle-stems.csv"},
	{KeyPrefixGroups, "prefix-groups.yml"},
	{KeyPrefixedRoots, "prefixed-roots.yml"},
	{KeyPronouns, "pronouns.yml"},
	{KeyRoots, "roots.yml"},
	{KeySandhi, "sandhi.yml"},
	{KeyVerbEndings, "verb-endings.yml"},
	{KeyVerbPrefixes, "verb-prefixes.yml"},
	{KeyVerbStems, "verb-stems.yml"},
	{KeyVerbs, "verbs.csv"},
}

// PathKeys returns every resource path key in declaration order.
func PathKeys() []string {
	keys := make([]string, len(pathDefaults))
	for i, d := range pathDefaults {
		keys[i] = d.key
	}
	return keys
}

// DefaultFileName returns the conventional file name for a resource path
// key, or "" if the key has no default.
func DefaultFileName(key string) string {
	for _, d := range pathDefaults {
		if d.key == key {
			return d.file
		}
	}
	return ""
}

// Settings is a normalized mapping of upper-case setting keys to values.
type Settings map[string]string

// FromMap builds Settings from an arbitrary mapping. Keys that are not
// fully upper-case are dropped, then path defaults are applied for any
// resource key the mapping did not supply.
func FromMap(m map[string]string) Settings {
	s := make(Settings, len(m))
	for k, v := range m {
		if k == strings.ToUpper(k) {
			s[k] = v
		}
	}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills in DATA_PATH/lang/<file> for every resource path key
// that is still unset. Without DATA_PATH there is no directory to join, so
// only explicitly supplied paths remain. Calling it again is harmless.
func (s Settings) ApplyDefaults() {
	base, ok := s[KeyDataPath]
	if !ok || base == "" {
		return
	}
	for _, d := range pathDefaults {
		if _, ok := s[d.key]; !ok {
			s[d.key] = filepath.Join(base, "lang", d.file)
		}
	}
}

// Get returns the value for key, or "" when unset.
func (s Settings) Get(key string) string {
	return s[key]
}

// Has reports whether key is set.
func (s Settings) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Set stores value under key.
func (s Settings) Set(key, value string) {
	s[key] = value
}

// DatabaseURI returns the store connection URL, or "" when unset.
func (s Settings) DatabaseURI() string {
	return s[KeyDatabaseURI]
}

// DataPath returns the base data directory, or "" when unset.
func (s Settings) DataPath() string {
	return s[KeyDataPath]
}

// LogLevel returns the configured log level, defaulting to INFO.
func (s Settings) LogLevel() string {
	if v := s[KeyLogLevel]; v != "" {
		return v
	}
	return DefaultLogLevel
}

// LogFormat returns the configured log format, defaulting to pretty.
func (s Settings) LogFormat() LogFormat {
	if strings.EqualFold(s[KeyLogFormat], string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

// Path returns the configured path for a resource key. A missing or empty
// value is an error: the pipeline never guesses at file locations.
func (s Settings) Path(key string) (string, error) {
	v := s[key]
	if v == "" {
		return "", fmt.Errorf("setting %s is not configured", key)
	}
	return v, nil
}
