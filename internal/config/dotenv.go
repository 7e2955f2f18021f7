package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil (not an error).
// Variables already set in the environment are never overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromFile reads settings from a dotenv-format settings file. The file
// alone defines the result: its contents are not merged into the process
// environment, and a missing file is an error.
func FromFile(path string) (Settings, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}
	return FromMap(m), nil
}

// Load resolves the settings for a run. With an explicit settings file the
// file alone defines the run; otherwise settings come from the process
// environment, after loading a local .env file if one exists.
func Load(settingsFile string) (Settings, error) {
	if settingsFile != "" {
		return FromFile(settingsFile)
	}
	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}
	return FromEnv()
}
