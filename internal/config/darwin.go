//go:build darwin

package config

import (
	"os"
	"path/filepath"
)

const plistPath = "Library/Preferences/com.portprobe.cli.plist"

func newPlatformStore() (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewPlistStore(filepath.Join(home, plistPath)), nil
}
