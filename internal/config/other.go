//go:build !darwin

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

func newPlatformStore() (Store, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStore(path), nil
}

func configPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, "portprobe", "config.json"), nil
}
