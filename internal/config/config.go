package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Keys accepted by Set, in display order.
var Keys = []string{"timeout", "pool_size", "ports", "rate"}

// Config holds persisted scan defaults. Zero values mean "use the built-in
// default".
type Config struct {
	Timeout  string  `json:"timeout,omitempty" plist:"timeout,omitempty"`
	PoolSize int     `json:"poolSize,omitempty" plist:"poolSize,omitempty"`
	Ports    string  `json:"ports,omitempty" plist:"ports,omitempty"`
	Rate     float64 `json:"rate,omitempty" plist:"rate,omitempty"`
}

// Store interface for config persistence
type Store interface {
	Load() (*Config, error)
	Save(cfg *Config) error
}

// NewStore returns the platform config store, or an in-memory store when
// no config location can be determined.
func NewStore() Store {
	store, err := newPlatformStore()
	if err != nil {
		return &memoryStore{cfg: &Config{}}
	}
	return store
}

// TimeoutDuration parses Timeout. It returns zero when unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Set validates value and assigns it to key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.Timeout = d.String()
	case "pool_size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("pool_size must be a positive integer, got %q", value)
		}
		c.PoolSize = n
	case "ports":
		c.Ports = value
	case "rate":
		r, err := strconv.ParseFloat(value, 64)
		if err != nil || r < 0 {
			return fmt.Errorf("rate must be a non-negative number, got %q", value)
		}
		c.Rate = r
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns the stored value of key as text. Unset values are empty.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "timeout":
		return c.Timeout, nil
	case "pool_size":
		if c.PoolSize == 0 {
			return "", nil
		}
		return strconv.Itoa(c.PoolSize), nil
	case "ports":
		return c.Ports, nil
	case "rate":
		if c.Rate == 0 {
			return "", nil
		}
		return strconv.FormatFloat(c.Rate, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
}

type memoryStore struct {
	cfg *Config
}

func (m *memoryStore) Load() (*Config, error) {
	cp := *m.cfg
	return &cp, nil
}

func (m *memoryStore) Save(cfg *Config) error {
	cp := *cfg
	m.cfg = &cp
	return nil
}
