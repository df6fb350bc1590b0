package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	Session   SessionConfig   `yaml:"session"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// CORSConfig holds the allowed frontend origins. Credentials are always
// allowed since auth rides on a cookie across origins.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SessionConfig holds session cookie configuration
type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
}

// BroadcastConfig holds spectator broadcast worker configuration
type BroadcastConfig struct {
	Interval time.Duration `yaml:"interval"`
	Enabled  bool          `yaml:"enabled"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 5 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 120 * time.Second
	}

	// CORS defaults: the Vite dev server and its preview port
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{
			"http://localhost:5173",
			"http://localhost:4173",
		}
	}

	// Session defaults
	if c.Session.CookieName == "" {
		c.Session.CookieName = "snake_session"
	}

	// Broadcast defaults
	if c.Broadcast.Interval == 0 {
		c.Broadcast.Interval = 10 * time.Second
	}
}

// DefaultConfig returns a configuration with all defaults
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Broadcast.Enabled = true
	return cfg
}
