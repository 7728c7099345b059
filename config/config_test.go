package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())

	p := cfg.Policy()
	assert.InDelta(t, 5000, p.AccountSize, 1e-9)
	assert.InDelta(t, 200, p.DailyLimit(), 1e-9)
	assert.InDelta(t, 400, p.MaxDrawdownLimit(), 1e-9)
}

func TestSaveLoadYAMLRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")

	cfg := Default()
	cfg.Account.Size = 25000
	cfg.Rules.DailyDrawdownPercent = 5
	cfg.Timezone.DayBoundary = "America/New_York"
	assert.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.InDelta(t, 25000, loaded.Account.Size, 1e-9)
	assert.InDelta(t, 5, loaded.Rules.DailyDrawdownPercent, 1e-9)
	assert.Equal(t, "America/New_York", loaded.Timezone.DayBoundary)
	assert.Equal(t, "America/New_York", loaded.DayBoundaryLocation().String())
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.json")
	data := `{
		"account": {"id": "A1", "currency": "USD", "size": 10000},
		"rules": {"daily_drawdown_percent": 4, "max_drawdown_percent": 8},
		"timezone": {"statement": "UTC", "day_boundary": "UTC"}
	}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.InDelta(t, 10000, cfg.Account.Size, 1e-9)
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero account size", func(c *Config) { c.Account.Size = 0 }},
		{"negative daily percent", func(c *Config) { c.Rules.DailyDrawdownPercent = -1 }},
		{"negative max percent", func(c *Config) { c.Rules.MaxDrawdownPercent = -1 }},
		{"bad statement timezone", func(c *Config) { c.Timezone.Statement = "Mars/Olympus" }},
		{"bad day boundary timezone", func(c *Config) { c.Timezone.DayBoundary = "nowhere" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvAccountSize, "100000")
	t.Setenv(EnvDailyPercent, "3")
	t.Setenv(EnvDBPath, "/tmp/alt.sqlite")

	cfg := Default()
	assert.NoError(t, cfg.ApplyEnv())

	assert.InDelta(t, 100000, cfg.Account.Size, 1e-9)
	assert.InDelta(t, 3, cfg.Rules.DailyDrawdownPercent, 1e-9)
	// Untouched values survive.
	assert.InDelta(t, 8, cfg.Rules.MaxDrawdownPercent, 1e-9)
	assert.Equal(t, "/tmp/alt.sqlite", cfg.Journal.DBPath)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvAccountSize, "lots")

	cfg := Default()
	assert.Error(t, cfg.ApplyEnv())
}
