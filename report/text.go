// Package report renders compliance reports for humans and tools.
// The evaluator stays presentation-free; everything here is derived
// from the Report struct alone.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kalabhaftu/propcheck/compliance"
	"github.com/kalabhaftu/propcheck/trades"
)

// Text renders the per-day breakdown, the max-drawdown block and the
// final verdict as plain console text.
func Text(r compliance.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Account Size: $%.2f\n", r.Policy.AccountSize)
	fmt.Fprintf(&b, "Daily Drawdown Limit: $%.2f (%.0f%%)\n", r.Policy.DailyLimit(), r.Policy.DailyDrawdownPct)
	fmt.Fprintf(&b, "Max Drawdown Limit: $%.2f (%.0f%%)\n", r.Policy.MaxDrawdownLimit(), r.Policy.MaxDrawdownPct)
	b.WriteString(strings.Repeat("-", 50) + "\n")

	for _, d := range r.Days {
		fmt.Fprintf(&b, "Date: %s\n", d.Date)
		fmt.Fprintf(&b, "  Start Balance: $%.2f\n", d.StartBalance)
		fmt.Fprintf(&b, "  Net PnL: $%.2f (%d trades)\n", d.NetPnL, d.TradeCount)
		fmt.Fprintf(&b, "  Day Loss: $%.2f\n", d.DayLoss)
		if d.Breached {
			b.WriteString("  Status: VIOLATION\n")
			fmt.Fprintf(&b, "  !!! DAILY DRAWDOWN LIMIT EXCEEDED BY $%.2f !!!\n", d.ExceededBy)
		} else {
			b.WriteString("  Status: OK\n")
		}
		b.WriteString(strings.Repeat("-", 20) + "\n")
	}

	dd := r.MaxDrawdown
	b.WriteString("\nMax Drawdown Analysis:\n")
	fmt.Fprintf(&b, "  Lowest Balance: $%.2f\n", dd.MinBalance)
	fmt.Fprintf(&b, "  Max Drawdown Used: $%.2f\n", dd.Used)
	fmt.Fprintf(&b, "  Limit: $%.2f\n", dd.Limit)
	if dd.Breached {
		fmt.Fprintf(&b, "  !!! MAX DRAWDOWN LIMIT EXCEEDED BY $%.2f !!!\n", dd.ExceededBy)
	} else {
		b.WriteString("  Status: OK\n")
	}

	if r.ViolationFound {
		b.WriteString("\nVERDICT: VIOLATION DETECTED\n")
	} else {
		b.WriteString("\nVERDICT: NO VIOLATIONS FOUND\n")
	}

	return b.String()
}

// JSON renders the report as indented JSON for downstream tooling.
func JSON(r compliance.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Trades renders an imported trade list as fixed-width console rows.
func Trades(tt []trades.Trade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-20s %10s %10s %10s %10s\n",
		"ID", "CLOSE TIME", "PROFIT", "COMMISSION", "SWAP", "NET")
	for _, t := range tt {
		fmt.Fprintf(&b, "%-12s %-20s %10.2f %10.2f %10.2f %10.2f\n",
			t.ID,
			t.CloseTime.Format("2006-01-02 15:04:05"),
			t.Profit, t.Commission, t.Swap, t.NetPnL)
	}
	return b.String()
}
