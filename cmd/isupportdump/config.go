package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the connection settings for the dump.
type Config struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"`
	Nick     string `yaml:"nick"`
	Username string `yaml:"username"`
	Realname string `yaml:"realname"`
	UseTLS   bool   `yaml:"use_tls"`
}

// loadConfig reads the YAML file when given, then lets IRC_* environment
// variables override, then applies defaults.
func loadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("IRC_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := os.Getenv("IRC_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("IRC_NICK"); v != "" {
		cfg.Nick = v
	}
	if v := os.Getenv("IRC_USER"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("IRC_USE_TLS"); v != "" {
		if useTLS, err := strconv.ParseBool(v); err == nil {
			cfg.UseTLS = useTLS
		}
	}

	if cfg.Server == "" {
		return nil, fmt.Errorf("no server configured (set IRC_SERVER or use -c)")
	}
	if cfg.Port == 0 {
		if cfg.UseTLS {
			cfg.Port = 6697
		} else {
			cfg.Port = 6667
		}
	}
	if cfg.Nick == "" {
		cfg.Nick = "isupportdump"
	}
	if cfg.Username == "" {
		cfg.Username = cfg.Nick
	}
	if cfg.Realname == "" {
		cfg.Realname = "isupport dump"
	}

	return &cfg, nil
}
