package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kalabhaftu/propcheck/compliance"
)

// Config represents a complete compliance-check configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Rules    RulesConfig    `json:"rules" yaml:"rules"`
	Timezone TimezoneConfig `json:"timezone" yaml:"timezone"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig describes the evaluated account.
type AccountConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Currency string  `json:"currency" yaml:"currency"`
	Size     float64 `json:"size" yaml:"size"`
}

// RulesConfig holds the firm's drawdown limits as percentages of the
// account size (4 means 4%).
type RulesConfig struct {
	DailyDrawdownPercent float64 `json:"daily_drawdown_percent" yaml:"daily_drawdown_percent"`
	MaxDrawdownPercent   float64 `json:"max_drawdown_percent" yaml:"max_drawdown_percent"`
}

// TimezoneConfig pins down the two timezone decisions a statement
// forces: which zone its naive close times are in, and which zone's
// midnight resets the firm's trading day. IANA names or "UTC".
type TimezoneConfig struct {
	Statement   string `json:"statement" yaml:"statement"`
	DayBoundary string `json:"day_boundary" yaml:"day_boundary"`
}

// JournalConfig points at the optional SQLite trade journal.
type JournalConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON, then validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML for .yaml/.yml paths
// and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration, including that both timezone
// names resolve to real locations.
func (c *Config) Validate() error {
	if c.Account.Size <= 0 {
		return fmt.Errorf("account.size must be positive")
	}
	if c.Rules.DailyDrawdownPercent < 0 {
		return fmt.Errorf("rules.daily_drawdown_percent must not be negative")
	}
	if c.Rules.MaxDrawdownPercent < 0 {
		return fmt.Errorf("rules.max_drawdown_percent must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone.Statement); err != nil {
		return fmt.Errorf("unknown timezone.statement %q: %w", c.Timezone.Statement, err)
	}
	if _, err := time.LoadLocation(c.Timezone.DayBoundary); err != nil {
		return fmt.Errorf("unknown timezone.day_boundary %q: %w", c.Timezone.DayBoundary, err)
	}
	return nil
}

// Policy maps the account and rule settings onto an evaluator policy.
func (c *Config) Policy() compliance.Policy {
	return compliance.Policy{
		AccountSize:      c.Account.Size,
		DailyDrawdownPct: c.Rules.DailyDrawdownPercent,
		MaxDrawdownPct:   c.Rules.MaxDrawdownPercent,
	}
}

// StatementLocation resolves the statement timezone. Call Validate
// first; an empty name means UTC.
func (c *Config) StatementLocation() *time.Location {
	return location(c.Timezone.Statement)
}

// DayBoundaryLocation resolves the trading-day boundary timezone.
func (c *Config) DayBoundaryLocation() *time.Location {
	return location(c.Timezone.DayBoundary)
}

func location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Default returns a configuration matching a common evaluation
// account: $5k size, 4% daily, 8% max, UTC day boundaries.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "ACC-001",
			Currency: "USD",
			Size:     5000,
		},
		Rules: RulesConfig{
			DailyDrawdownPercent: 4,
			MaxDrawdownPercent:   8,
		},
		Timezone: TimezoneConfig{
			Statement:   "UTC",
			DayBoundary: "UTC",
		},
		Journal: JournalConfig{
			DBPath: "./propcheck.sqlite",
		},
	}
}
