package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable overrides. A .env file in the working
// directory is loaded first; real environment variables win over it.
const (
	EnvAccountSize  = "PROPCHECK_ACCOUNT_SIZE"
	EnvDailyPercent = "PROPCHECK_DAILY_DD_PERCENT"
	EnvMaxPercent   = "PROPCHECK_MAX_DD_PERCENT"
	EnvStatementTZ  = "PROPCHECK_STATEMENT_TZ"
	EnvDayTZ        = "PROPCHECK_DAY_TZ"
	EnvDBPath       = "PROPCHECK_DB"
)

// ApplyEnv overlays environment variables (and any .env file) onto c,
// then re-validates. Unset variables leave the file/default values
// untouched.
func (c *Config) ApplyEnv() error {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv(EnvAccountSize); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAccountSize, err)
		}
		c.Account.Size = size
	}
	if v := os.Getenv(EnvDailyPercent); v != "" {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDailyPercent, err)
		}
		c.Rules.DailyDrawdownPercent = pct
	}
	if v := os.Getenv(EnvMaxPercent); v != "" {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxPercent, err)
		}
		c.Rules.MaxDrawdownPercent = pct
	}
	if v := os.Getenv(EnvStatementTZ); v != "" {
		c.Timezone.Statement = v
	}
	if v := os.Getenv(EnvDayTZ); v != "" {
		c.Timezone.DayBoundary = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Journal.DBPath = v
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config after env overrides: %w", err)
	}
	return nil
}
