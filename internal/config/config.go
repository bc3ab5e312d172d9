package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level callboard configuration.
type Config struct {
	Version   string          `yaml:"version"`
	Server    ServerConfig    `yaml:"server"`
	Backend   BackendConfig   `yaml:"backend"`
	Queue     QueueConfig     `yaml:"queue"`
	Telephony TelephonyConfig `yaml:"telephony,omitempty"`
}

// ServerConfig holds console HTTP server settings.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	Bind     string `yaml:"bind"` // Address to bind (default: 127.0.0.1)
	LogLevel string `yaml:"log_level"`
}

// BackendConfig points at the call-center backend API.
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
}

// QueueConfig tunes the agent queue poller.
type QueueConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

// TelephonyConfig seeds the telephony settings form. The console never
// persists edits back to this file; they live in memory only.
type TelephonyConfig struct {
	SIPDomain   string `yaml:"sip_domain,omitempty"`
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	Active      bool   `yaml:"active,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Load reads and parses a callboard config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply zero-value defaults after unmarshal
	if cfg.Queue.PollIntervalSeconds == 0 {
		cfg.Queue.PollIntervalSeconds = 10
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			Port:     8090,
			LogLevel: "info",
		},
		Backend: BackendConfig{
			BaseURL: "http://127.0.0.1:3000",
		},
		Queue: QueueConfig{
			PollIntervalSeconds: 10,
		},
	}
}

// Save writes the config to a YAML file at the given path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks that the config is consistent.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url %q is not an absolute URL", c.Backend.BaseURL)
	}
	if c.Queue.PollIntervalSeconds < 1 {
		return fmt.Errorf("queue.poll_interval_seconds must be positive, got %d", c.Queue.PollIntervalSeconds)
	}
	return nil
}
