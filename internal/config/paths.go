// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = "SCLAB9_CONFIG"
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "poet.yaml"
	// ConfigDirName is the directory under ~/.config.
	ConfigDirName = "sclab9"
)

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, ConfigFileName)
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// EnsureConfigDir creates the directory holding configPath.
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
