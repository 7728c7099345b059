package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "propcheck",
	Short: "Check a trading account's history against prop-firm drawdown rules",
	Long: `Propcheck evaluates a closed-trade history against a proprietary
trading firm's risk rules: the daily drawdown limit and the maximum
drawdown limit, both as fixed percentages of the account size.

It provides tools for:
  - Checking broker CSV statements (plain, .gz or .xz)
  - Importing statements into a SQLite trade journal
  - Querying imported trades by day or range
  - Generating and validating rule configuration files`,
}

var verbose bool

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// logger returns the CLI logger: silent by default, development
// output with --verbose.
func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
