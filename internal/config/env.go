package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvSettings holds the settings readable from environment variables.
// Every field maps to an environment variable of the same name, with no
// prefix.
type EnvSettings struct {
	// DatabaseURI is the store connection URL.
	// Env: DATABASE_URI
	DatabaseURI string `envconfig:"DATABASE_URI"`

	// DataPath is the base directory holding the linguistic resources.
	// Env: DATA_PATH
	DataPath string `envconfig:"DATA_PATH"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT"`

	// Resource file overrides. Each one replaces the DATA_PATH/lang
	// default for a single file.
	AdjectiveStems      string `envconfig:"ADJECTIVE_STEMS"`
	Enums               string `envconfig:"ENUMS"`
	Gerunds             string `envconfig:"GERUNDS"`
	Indeclinables       string `envconfig:"INDECLINABLES"`
	Infinitives         string `envconfig:"INFINITIVES"`
	IrregularAdjectives string `envconfig:"IRREGULAR_ADJECTIVES"`
	IrregularNouns      string `envconfig:"IRREGULAR_NOUNS"`
	ModifiedRoots       string `envconfig:"MODIFIED_ROOTS"`
	NominalEndings      string `envconfig:"NOMINAL_ENDINGS"`
	NounStems           string `envconfig:"NOUN_STEMS"`
	ParticipleStems     string `envconfig:"PARTICIPLE_STEMS"`
	PrefixGroups        string `envconfig:"PREFIX_GROUPS"`
	PrefixedRoots       string `envconfig:"PREFIXED_ROOTS"`
	Pronouns            string `envconfig:"PRONOUNS"`
	Roots               string `envconfig:"ROOTS"`
	Sandhi              string `envconfig:"SANDHI"`
	VerbEndings         string `envconfig:"VERB_ENDINGS"`
	VerbPrefixes        string `envconfig:"VERB_PREFIXES"`
	VerbStems           string `envconfig:"VERB_STEMS"`
	Verbs               string `envconfig:"VERBS"`
}

// LoadFromEnv reads settings from environment variables with no prefix.
func LoadFromEnv() (EnvSettings, error) {
	var e EnvSettings
	if err := envconfig.Process("", &e); err != nil {
		return EnvSettings{}, fmt.Errorf("read environment: %w", err)
	}
	return e, nil
}

// LoadFromEnvWithPrefix reads settings from environment variables with a
// custom prefix. For example, prefix "KOSHA" reads KOSHA_DATA_PATH
// instead of DATA_PATH.
func LoadFromEnvWithPrefix(prefix string) (EnvSettings, error) {
	var e EnvSettings
	if err := envconfig.Process(prefix, &e); err != nil {
		return EnvSettings{}, fmt.Errorf("read environment: %w", err)
	}
	return e, nil
}

// ToSettings converts EnvSettings to Settings, keeping only the variables
// that were actually set and applying path defaults.
func (e EnvSettings) ToSettings() Settings {
	m := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}

	put(KeyDatabaseURI, e.DatabaseURI)
	put(KeyDataPath, e.DataPath)
	put(KeyLogLevel, e.LogLevel)
	put(KeyLogFormat, e.LogFormat)

	put(KeyAdjectiveStems, e.AdjectiveStems)
	put(KeyEnums, e.Enums)
	put(KeyGerunds, e.Gerunds)
	put(KeyIndeclinables, e.Indeclinables)
	put(KeyInfinitives, e.Infinitives)
	put(KeyIrregularAdjectives, e.IrregularAdjectives)
	put(KeyIrregularNouns, e.IrregularNouns)
	put(KeyModifiedRoots, e.ModifiedRoots)
	put(KeyNominalEndings, e.NominalEndings)
	put(KeyNounStems, e.NounStems)
	put(KeyParticipleStems, e.ParticipleStems)
	put(KeyPrefixGroups, e.PrefixGroups)
	put(KeyPrefixedRoots, e.PrefixedRoots)
	put(KeyPronouns, e.Pronouns)
	put(KeyRoots, e.Roots)
	put(KeySandhi, e.Sandhi)
	put(KeyVerbEndings, e.VerbEndings)
	put(KeyVerbPrefixes, e.VerbPrefixes)
	put(KeyVerbStems, e.VerbStems)
	put(KeyVerbs, e.Verbs)

	return FromMap(m)
}

// FromEnv reads settings from the process environment in one step.
func FromEnv() (Settings, error) {
	e, err := LoadFromEnv()
	if err != nil {
		return nil, err
	}
	return e.ToSettings(), nil
}
