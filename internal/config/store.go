package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"howett.net/plist"
)

type codec struct {
	marshal   func(cfg *Config) ([]byte, error)
	unmarshal func(data []byte, cfg *Config) error
}

var jsonCodec = codec{
	marshal: func(cfg *Config) ([]byte, error) {
		return json.MarshalIndent(cfg, "", "  ")
	},
	unmarshal: func(data []byte, cfg *Config) error {
		return json.Unmarshal(data, cfg)
	},
}

var plistCodec = codec{
	marshal: func(cfg *Config) ([]byte, error) {
		return plist.MarshalIndent(cfg, plist.XMLFormat, "\t")
	},
	unmarshal: func(data []byte, cfg *Config) error {
		_, err := plist.Unmarshal(data, cfg)
		return err
	},
}

type fileStore struct {
	path  string
	codec codec
	mu    sync.RWMutex
}

// NewJSONStore stores the config as JSON at path.
func NewJSONStore(path string) Store {
	return &fileStore{path: path, codec: jsonCodec}
}

// NewPlistStore stores the config as an XML property list at path.
func NewPlistStore(path string) Store {
	return &fileStore{path: path, codec: plistCodec}
}

func (s *fileStore) Load() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := &Config{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := s.codec.unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *fileStore) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := s.codec.marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
