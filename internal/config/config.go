package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Theme            string        `toml:"theme"`
	DefaultBoard     string        `toml:"default_board"`
	DefaultIdentity  string        `toml:"default_identity"`
	ProbeInterval    time.Duration `toml:"-"`
	ProbeIntervalStr string        `toml:"probe_interval"`
	MaxHistory       int           `toml:"max_history"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:            "solarized-dark",
		DefaultBoard:     "",
		DefaultIdentity:  "",
		ProbeInterval:    5 * time.Second,
		ProbeIntervalStr: "5s",
		MaxHistory:       240,
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.ProbeIntervalStr != "" {
		d, err := time.ParseDuration(cfg.ProbeIntervalStr)
		if err == nil {
			cfg.ProbeInterval = d
		}
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	cfg.ProbeIntervalStr = cfg.ProbeInterval.String()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
