package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"hivemind/internal/api"
)

// EnvBackendURL overrides the configured backend URL when set.
const EnvBackendURL = "HIVEMIND_BACKEND_URL"

// Config is the client configuration. The backend URL is the only setting
// the core needs; the rest tune display behavior.
type Config struct {
	BackendURL   string `yaml:"backendUrl"`
	PollInterval int    `yaml:"pollIntervalSeconds,omitempty"` // default 2
	Notify       bool   `yaml:"notify"`                        // desktop notification on task completion
}

// ConfigPath points at the active config file. Tests override it.
var ConfigPath string

func init() {
	// Prefer a config file next to the working directory, then the home dir.
	pwd, _ := os.Getwd()
	local := filepath.Join(pwd, "hivemind.yaml")
	if _, err := os.Stat(local); err == nil {
		ConfigPath = local
		return
	}
	home, _ := os.UserHomeDir()
	ConfigPath = filepath.Join(home, ".hivemind", "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BackendURL:   api.DefaultBaseURL,
		PollInterval: 2,
		Notify:       true,
	}
}

// Load reads the config file, applying defaults and the env override.
// A missing file is not an error; defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", ConfigPath, err)
	}

	if url := os.Getenv(EnvBackendURL); url != "" {
		cfg.BackendURL = url
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = api.DefaultBaseURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2
	}
	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(ConfigPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}

// PollDuration returns the poll interval as a duration.
func (c *Config) PollDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}
