package config

import (
	"os"
	"path/filepath"
)

// Find searches for the config file in startDir and each parent
// directory, returning the first match. It returns an empty string
// when no config file exists anywhere on the path to the filesystem
// root.
func Find(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Discover loads the nearest config file above startDir, falling back
// to defaults when none exists.
func Discover(startDir string) (*Config, error) {
	path := Find(startDir)
	if path == "" {
		return DefaultConfig(), nil
	}

	return LoadFromFile(path)
}
