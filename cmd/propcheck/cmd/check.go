package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalabhaftu/propcheck/compliance"
	"github.com/kalabhaftu/propcheck/config"
	"github.com/kalabhaftu/propcheck/journal"
	"github.com/kalabhaftu/propcheck/pkg/id"
	"github.com/kalabhaftu/propcheck/report"
	"github.com/kalabhaftu/propcheck/statement"
	"github.com/kalabhaftu/propcheck/trades"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a trade history against the drawdown rules",
	Long: `Evaluate a closed-trade history against the configured daily and
maximum drawdown limits and print a compliance report.

Trades come from a broker CSV statement (--csv) or a previously
imported journal (--db). Rule values come from the config file and
environment, with flags taking final precedence.

Examples:
  propcheck check --csv statement.csv --size 5000 --daily 4 --max 8
  propcheck check --csv statement.csv.xz --format json
  propcheck check --db propcheck.sqlite --config rules.yaml`,
	RunE: runCheck,
}

var (
	checkConfigPath string
	checkCSVPath    string
	checkDBPath     string
	checkSize       float64
	checkDaily      float64
	checkMax        float64
	checkStmtTZ     string
	checkDayTZ      string
	checkFormat     string
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
	checkCmd.Flags().StringVar(&checkCSVPath, "csv", "", "broker CSV statement (.csv, .csv.gz or .csv.xz)")
	checkCmd.Flags().StringVar(&checkDBPath, "db", "", "SQLite trade journal to evaluate instead of a CSV")
	checkCmd.Flags().Float64Var(&checkSize, "size", 0, "account size (overrides config)")
	checkCmd.Flags().Float64Var(&checkDaily, "daily", 0, "daily drawdown percent (overrides config)")
	checkCmd.Flags().Float64Var(&checkMax, "max", 0, "max drawdown percent (overrides config)")
	checkCmd.Flags().StringVar(&checkStmtTZ, "statement-tz", "", "timezone of statement close times (overrides config)")
	checkCmd.Flags().StringVar(&checkDayTZ, "day-tz", "", "trading-day boundary timezone (overrides config)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format: text, org or json")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tt, err := loadTrades(cfg)
	if err != nil {
		return err
	}

	ev, err := compliance.New(cfg.Policy())
	if err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	ev.DayBoundary = cfg.DayBoundaryLocation()
	ev.Log = logger()

	rep := ev.Evaluate(tt)
	rep.RunID = id.New()
	rep.Generated = time.Now().UTC()

	switch checkFormat {
	case "text":
		fmt.Print(report.Text(rep))
	case "org":
		fmt.Print(report.Org(rep))
	case "json":
		out, err := report.JSON(rep)
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format %q (want text, org or json)", checkFormat)
	}
	return nil
}

// loadConfig builds the effective config: defaults, then file, then
// environment, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if checkConfigPath != "" {
		loaded, err := config.LoadFromFile(checkConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("size") {
		cfg.Account.Size = checkSize
	}
	if cmd.Flags().Changed("daily") {
		cfg.Rules.DailyDrawdownPercent = checkDaily
	}
	if cmd.Flags().Changed("max") {
		cfg.Rules.MaxDrawdownPercent = checkMax
	}
	if checkStmtTZ != "" {
		cfg.Timezone.Statement = checkStmtTZ
	}
	if checkDayTZ != "" {
		cfg.Timezone.DayBoundary = checkDayTZ
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTrades(cfg *config.Config) ([]trades.Trade, error) {
	switch {
	case checkCSVPath != "":
		rows, err := statement.ReadFile(checkCSVPath)
		if err != nil {
			return nil, fmt.Errorf("read statement: %w", err)
		}
		n := trades.NewNormalizer(cfg.StatementLocation(), logger())
		return n.Normalize(rows), nil

	case checkDBPath != "":
		j, err := journal.NewSQLite(checkDBPath)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()
		tt, err := j.ListTrades()
		if err != nil {
			return nil, fmt.Errorf("list trades: %w", err)
		}
		return tt, nil

	default:
		return nil, fmt.Errorf("either --csv or --db is required")
	}
}
