package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath           = "config.yaml"
	PathEnv               = "CONFIG_PATH"
	defaultRandomAttempts = 1000
	defaultDedupTTL       = 24 * 60
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Seats  SeatsConfig  `yaml:"seats"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Redis  RedisConfig  `yaml:"redis"`
	Worker WorkerConfig `yaml:"worker"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SeatsConfig struct {
	RandomAttempts int `yaml:"random_attempts"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	TicketTopic        string   `yaml:"ticket_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// Enabled reports whether ticket events should be published at all.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.TicketTopic != ""
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type WorkerConfig struct {
	DedupTTLMinutes int `yaml:"dedup_ttl_minutes"`
}

func (w WorkerConfig) DedupTTL() time.Duration {
	return time.Duration(w.DedupTTLMinutes) * time.Minute
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to Default when path is the
// implicit default location and the file does not exist.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ResolvePath picks the config file: the flag when it was set, then the
// CONFIG_PATH environment variable, then DefaultPath. explicit is false only
// for the DefaultPath fallback.
func ResolvePath(flagValue string, flagChanged bool) (path string, explicit bool) {
	if flagChanged {
		return flagValue, true
	}
	if env := os.Getenv(PathEnv); env != "" {
		return env, true
	}
	return DefaultPath, false
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Seats.RandomAttempts <= 0 {
		c.Seats.RandomAttempts = defaultRandomAttempts
	}
	if c.Worker.DedupTTLMinutes <= 0 {
		c.Worker.DedupTTLMinutes = defaultDedupTTL
	}
}
