package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSet(t *testing.T) {
	var cfg Config
	for key, value := range map[string]string{
		"timeout":   "25ms",
		"pool_size": "64",
		"ports":     "1-1024",
		"rate":      "500",
	} {
		if err := cfg.Set(key, value); err != nil {
			t.Fatalf("Set(%s, %s): %v", key, value, err)
		}
	}

	d, err := cfg.TimeoutDuration()
	if err != nil {
		t.Fatalf("TimeoutDuration: %v", err)
	}
	if d != 25*time.Millisecond || cfg.PoolSize != 64 || cfg.Ports != "1-1024" || cfg.Rate != 500 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	for _, key := range Keys {
		if v, err := cfg.Get(key); err != nil || v == "" {
			t.Fatalf("Get(%s) = %q, %v", key, v, err)
		}
	}
}

func TestSet_Invalid(t *testing.T) {
	cases := [][2]string{
		{"timeout", "soon"},
		{"timeout", "-1s"},
		{"pool_size", "0"},
		{"pool_size", "many"},
		{"rate", "-2"},
		{"color", "blue"},
	}
	for _, c := range cases {
		t.Run(c[0]+"="+c[1], func(t *testing.T) {
			var cfg Config
			if err := cfg.Set(c[0], c[1]); err == nil {
				t.Fatalf("expected error for %s=%s", c[0], c[1])
			}
		})
	}
}

func TestGet_UnsetIsEmpty(t *testing.T) {
	var cfg Config
	for _, key := range Keys {
		if v, err := cfg.Get(key); err != nil || v != "" {
			t.Fatalf("Get(%s) = %q, %v; want empty", key, v, err)
		}
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func testStoreRoundTrip(t *testing.T, store Store, path string) {
	t.Helper()

	// missing file loads as empty config
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != (Config{}) {
		t.Fatalf("expected empty config, got %+v", cfg)
	}

	cfg.Timeout = "50ms"
	cfg.PoolSize = 128
	cfg.Ports = "22,80"
	cfg.Rate = 12.5
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("got %+v want %+v", got, cfg)
	}
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	testStoreRoundTrip(t, NewJSONStore(path), path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"poolSize": 128`) {
		t.Fatalf("unexpected JSON: %s", data)
	}
}

func TestPlistStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "com.portprobe.cli.plist")
	testStoreRoundTrip(t, NewPlistStore(path), path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "<key>poolSize</key>") {
		t.Fatalf("unexpected plist: %s", data)
	}
}

func TestJSONStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewJSONStore(path).Load(); err == nil {
		t.Fatal("expected error for corrupt config")
	}
}

func TestMemoryStore(t *testing.T) {
	s := &memoryStore{cfg: &Config{}}
	if err := s.Save(&Config{PoolSize: 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cfg, _ := s.Load()
	cfg.PoolSize = 9
	again, _ := s.Load()
	if again.PoolSize != 3 {
		t.Fatalf("Load returned shared state: %+v", again)
	}
}
