package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds optional user settings loaded from
// $XDG_CONFIG_HOME/archdiag/config.toml (or ~/.config/archdiag/config.toml).
// Command-line flags override config values; a missing file means defaults.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// OutputConfig controls where and how artifacts are written.
type OutputConfig struct {
	Dir     string   `toml:"dir"`     // output directory, default "."
	Formats []string `toml:"formats"` // default output formats
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"`    // "file" (default) or "redis"
	RedisAddr string `toml:"redis_addr"` // host:port, backend "redis" only
}

// ServeConfig holds preview server defaults.
type ServeConfig struct {
	Addr string `toml:"addr"` // listen address, default ":8571"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: ".", Formats: []string{"png"}},
		Cache:  CacheConfig{Backend: "file", RedisAddr: "localhost:6379"},
		Serve:  ServeConfig{Addr: ":8571"},
	}
}

// LoadConfig reads the config file if present, merging it over defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFile(filepath.Join(dir, "config.toml"))
}

func loadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"png"}
	}
	return cfg, nil
}
