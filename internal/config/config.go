// Package config provides YAML-based configuration loading for Orderdesk.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Orderdesk configuration, loaded from orderdesk.yaml.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	LLM         LLMConfig         `yaml:"llm"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Sessions    SessionsConfig    `yaml:"sessions"`
	Notify      NotifyConfig      `yaml:"notify"`
	Cleanup     CleanupConfig     `yaml:"cleanup"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	LoginPassword  string   `yaml:"login_password"`
	UploadDir      string   `yaml:"upload_dir"`
}

// DatabaseConfig selects and configures the storage backend.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // "sqlite" or "mysql"
	Path     string `yaml:"path"`   // sqlite file path
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// LLMConfig holds settings for the chat-completion backend.
type LLMConfig struct {
	BaseURL        string  `yaml:"base_url"`
	APIKeyEnv      string  `yaml:"api_key_env"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// TranscriberConfig holds settings for the speech-to-text backend.
type TranscriberConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
}

// SessionsConfig selects and configures the conversation session store.
type SessionsConfig struct {
	Store              string `yaml:"store"` // "memory" or "redis"
	RedisAddr          string `yaml:"redis_addr"`
	RedisTTLHours      int    `yaml:"redis_ttl_hours"`
	MaxTranscriptTurns int    `yaml:"max_transcript_turns"`
}

// NotifyConfig holds chat-platform credentials for staff order notifications.
// Both platforms are optional; empty tokens disable the notifier.
type NotifyConfig struct {
	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannel   string `yaml:"slack_channel"`
	DiscordToken   string `yaml:"discord_token"`
	DiscordChannel string `yaml:"discord_channel"`
}

// CleanupConfig controls the scheduled purge of stale orders.
type CleanupConfig struct {
	MaxOrderAgeHours int    `yaml:"max_order_age_hours"`
	Schedule         string `yaml:"schedule"` // 5-field cron expression
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a Config with all defaults applied and no file input.
// Used by commands that can run without a config file on disk.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// LLMTimeout returns the configured LLM call timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSeconds) * time.Second
}

// MaxOrderAge returns the configured stale-order threshold as a duration.
func (c *Config) MaxOrderAge() time.Duration {
	return time.Duration(c.Cleanup.MaxOrderAgeHours) * time.Hour
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.LoginPassword == "" {
		c.Server.LoginPassword = os.Getenv("LOGIN_PASSWORD")
	}
	if c.Server.UploadDir == "" {
		c.Server.UploadDir = "uploads"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "orderdesk.db"
	}
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.Name == "" {
		c.Database.Name = "orderdesk"
	}
	if c.Database.User == "" {
		c.Database.User = "root"
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = "GROQ_API_KEY"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "llama3-70b-8192"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 60
	}
	if c.Transcriber.BaseURL == "" {
		c.Transcriber.BaseURL = c.LLM.BaseURL
	}
	if c.Transcriber.APIKeyEnv == "" {
		c.Transcriber.APIKeyEnv = c.LLM.APIKeyEnv
	}
	if c.Transcriber.Model == "" {
		c.Transcriber.Model = "whisper-large-v3"
	}
	if c.Sessions.Store == "" {
		c.Sessions.Store = "memory"
	}
	if c.Sessions.RedisAddr == "" {
		c.Sessions.RedisAddr = "127.0.0.1:6379"
	}
	if c.Sessions.RedisTTLHours == 0 {
		c.Sessions.RedisTTLHours = 24
	}
	if c.Sessions.MaxTranscriptTurns == 0 {
		c.Sessions.MaxTranscriptTurns = 40
	}
	if c.Cleanup.MaxOrderAgeHours == 0 {
		c.Cleanup.MaxOrderAgeHours = 6
	}
	if c.Cleanup.Schedule == "" {
		c.Cleanup.Schedule = "0 * * * *"
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("database.driver %q is not supported (sqlite, mysql)", c.Database.Driver))
	}
	switch c.Sessions.Store {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Sprintf("sessions.store %q is not supported (memory, redis)", c.Sessions.Store))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("llm.temperature %v is out of range", c.LLM.Temperature))
	}
	if c.Cleanup.MaxOrderAgeHours < 0 {
		errs = append(errs, "cleanup.max_order_age_hours must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
