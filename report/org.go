package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/kalabhaftu/propcheck/compliance"
)

// Org renders a compliance report as an Org-mode block suitable for
// pasting into a trading journal. Structured facts live in a
// PROPERTIES drawer for easy search; the day breakdown is a table.
func Org(r compliance.Report) string {
	var b strings.Builder

	verdict := "PASS"
	if r.ViolationFound {
		verdict = "VIOLATION"
	}

	fmt.Fprintf(&b, "* COMPLIANCE %s (%s)\n", verdict, shortID(r.RunID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", r.RunID)
	if !r.Generated.IsZero() {
		fmt.Fprintf(&b, ":GENERATED: %s\n", r.Generated.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&b, ":ACCOUNT_SIZE: %.2f\n", r.Policy.AccountSize)
	fmt.Fprintf(&b, ":DAILY_DD_PCT: %.2f\n", r.Policy.DailyDrawdownPct)
	fmt.Fprintf(&b, ":MAX_DD_PCT: %.2f\n", r.Policy.MaxDrawdownPct)
	fmt.Fprintf(&b, ":DAILY_LIMIT: %.2f\n", r.Policy.DailyLimit())
	fmt.Fprintf(&b, ":MAX_DD_LIMIT: %.2f\n", r.Policy.MaxDrawdownLimit())
	fmt.Fprintf(&b, ":MIN_BALANCE: %.2f\n", r.MaxDrawdown.MinBalance)
	fmt.Fprintf(&b, ":MAX_DD_USED: %.2f\n", r.MaxDrawdown.Used)
	fmt.Fprintf(&b, ":VIOLATION: %t\n", r.ViolationFound)
	b.WriteString(":END:\n\n")

	b.WriteString("** Daily Breakdown\n")
	b.WriteString("| Date | Trades | Net PnL | Day Loss | Status |\n")
	b.WriteString("|------+--------+---------+----------+--------|\n")
	for _, d := range r.Days {
		status := "OK"
		if d.Breached {
			status = "VIOLATION"
		}
		fmt.Fprintf(&b, "| %s | %d | %.2f | %.2f | %s |\n",
			d.Date, d.TradeCount, d.NetPnL, d.DayLoss, status)
	}

	b.WriteString("\n** Max Drawdown\n")
	fmt.Fprintf(&b, "- Lowest balance: *%.2f*\n", r.MaxDrawdown.MinBalance)
	fmt.Fprintf(&b, "- Drawdown used: *%.2f* of %.2f\n", r.MaxDrawdown.Used, r.MaxDrawdown.Limit)
	if r.MaxDrawdown.Breached {
		fmt.Fprintf(&b, "- Exceeded by: *%.2f*\n", r.MaxDrawdown.ExceededBy)
	}

	b.WriteString("\n** Review\n- \n")

	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
