package config

import (
	"errors"
	"os"
	"path/filepath"
)

func userDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("user config directory not found")
	}
	return filepath.Join(dir, "pretender"), nil
}

// UserPath is the per-user config file location.
func UserPath() (string, error) {
	dir, err := userDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultPath), nil
}

// Resolve picks the config file to load. An explicit path wins, then
// DefaultPath in the working directory, then UserPath. When nothing else can
// be determined DefaultPath is returned.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	if p, err := UserPath(); err == nil {
		return p
	}
	return DefaultPath
}
