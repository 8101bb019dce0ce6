// Package config provides YAML configuration for the fluxdemo binary.
//
// Example configuration:
//
//	tick_rate: 250ms
//	load_delay: 500ms
//	log_level: debug
//
//	seed:
//	  users:
//	    - id: 1
//	      first_name: Konrad
//	  feed:
//	    - author_id: 1
//	      title: Hello
//	      body: "First *post*."
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	defaultTickRate      = 250 * time.Millisecond
	defaultLoadDelay     = 500 * time.Millisecond
	defaultMessageBuffer = 128
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration structure.
type Config struct {
	// TickRate is the app tick interval. Defaults to 250ms when absent;
	// an explicit 0s disables ticks.
	TickRate Duration `yaml:"tick_rate"`

	// LoadDelay simulates the latency of loading users. Defaults to 500ms
	// when absent; an explicit 0s loads immediately.
	LoadDelay Duration `yaml:"load_delay"`

	// MessageBuffer is the app message channel size. Defaults to 128.
	MessageBuffer int `yaml:"message_buffer"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`

	// Seed holds the fixtures loaded into the stores.
	Seed Seed `yaml:"seed"`
}

// Seed holds initial store contents.
type Seed struct {
	Users []UserSeed `yaml:"users"`
	Feed  []FeedSeed `yaml:"feed"`
}

// UserSeed is a user fixture.
type UserSeed struct {
	ID        int    `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// FeedSeed is a feed item fixture. ID is optional; one is generated when
// empty.
type FeedSeed struct {
	ID       string    `yaml:"id"`
	AuthorID int       `yaml:"author_id"`
	Title    string    `yaml:"title"`
	Body     string    `yaml:"body"`
	PostedAt time.Time `yaml:"posted_at"`
}

// Duration wraps time.Duration for YAML strings like "250ms".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the value as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns a config with defaults and a small seed.
func Default() *Config {
	cfg := &Config{
		TickRate:  Duration(defaultTickRate),
		LoadDelay: Duration(defaultLoadDelay),
		Seed: Seed{
			Users: []UserSeed{
				{ID: 1, FirstName: "Konrad"},
				{ID: 2, FirstName: "Ada", LastName: "Lovelace"},
			},
			Feed: []FeedSeed{
				{AuthorID: 1, Title: "Stores", Body: "A *store* holds shared state and notifies listeners."},
				{AuthorID: 2, Title: "Engines", Body: "The engine weaves **algebraic** patterns."},
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML, applies defaults, and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Config{
		TickRate:  Duration(defaultTickRate),
		LoadDelay: Duration(defaultLoadDelay),
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate checks field ranges and seed consistency.
func (c *Config) Validate() error {
	if c.TickRate < 0 {
		return invalid("tick_rate cannot be negative, got %s", c.TickRate.Duration())
	}
	if c.LoadDelay < 0 {
		return invalid("load_delay cannot be negative, got %s", c.LoadDelay.Duration())
	}
	if c.MessageBuffer < 0 {
		return invalid("message_buffer cannot be negative, got %d", c.MessageBuffer)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return invalid("log_level: %v", err)
	}

	seen := make(map[int]bool, len(c.Seed.Users))
	for i, u := range c.Seed.Users {
		if u.ID <= 0 {
			return invalid("seed.users[%d]: id must be positive, got %d", i, u.ID)
		}
		if seen[u.ID] {
			return invalid("seed.users[%d]: duplicate id %d", i, u.ID)
		}
		seen[u.ID] = true
		if strings.TrimSpace(u.FirstName) == "" {
			return invalid("seed.users[%d] (id %d): first_name is required", i, u.ID)
		}
	}
	for i, item := range c.Seed.Feed {
		if item.ID != "" {
			if _, err := uuid.Parse(item.ID); err != nil {
				return invalid("seed.feed[%d]: id: %v", i, err)
			}
		}
		if strings.TrimSpace(item.Title) == "" {
			return invalid("seed.feed[%d]: title is required", i)
		}
	}
	return nil
}

// applyDefaults fills empty fields. Durations are seeded before unmarshal
// so that an explicit zero survives.
func (c *Config) applyDefaults() {
	if c.MessageBuffer == 0 {
		c.MessageBuffer = defaultMessageBuffer
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
