package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalabhaftu/propcheck/journal"
	"github.com/kalabhaftu/propcheck/report"
	"github.com/kalabhaftu/propcheck/statement"
	"github.com/kalabhaftu/propcheck/trades"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Import and query the SQLite trade journal",
	Long: `Maintain a SQLite journal of normalized trades.

Subcommands:
  import - Normalize a CSV statement and store its trades
  today  - List trades closed today
  day    - List trades closed on a specific day

Examples:
  propcheck journal import statement.csv
  propcheck journal today
  propcheck journal day 2025-12-24`,
}

var journalImportCmd = &cobra.Command{
	Use:   "import <statement.csv>",
	Short: "Import a CSV statement into the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalImport,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var (
	journalDBPath string
	journalTZ     string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalImportCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./propcheck.sqlite", "path to SQLite journal DB")
	journalImportCmd.Flags().StringVar(&journalTZ, "statement-tz", "UTC", "timezone of statement close times")
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	loc, err := time.LoadLocation(journalTZ)
	if err != nil {
		return fmt.Errorf("statement timezone: %w", err)
	}

	rows, err := statement.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}
	tt := trades.NewNormalizer(loc, logger()).Normalize(rows)

	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	if err := j.ImportTrades(tt); err != nil {
		return fmt.Errorf("import trades: %w", err)
	}

	fmt.Printf("Imported %d trades from %s (skipped %d rows)\n", len(tt), args[0], len(rows)-len(tt))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	loc := time.Local
	return listDay(loc, time.Now().In(loc).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(time.Local, args[0])
}

func listDay(loc *time.Location, day string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	start, end, err := dayBounds(loc, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListTradesClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Print(report.Trades(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
