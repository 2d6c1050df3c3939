//go:build !darwin && !windows

package config

import (
	"path/filepath"
	"testing"
)

func TestConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if want := filepath.Join(dir, "portprobe", "config.json"); got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}
