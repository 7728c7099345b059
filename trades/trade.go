package trades

import "time"

// CloseTimeLayout is the timestamp format used by the broker's trade
// history export, e.g. "24/12/2025 13:21:00".
const CloseTimeLayout = "02/01/2006 15:04:05"

// TotalRowID marks the pre-computed summary row some exports append
// after the individual trades. It is never a trade.
const TotalRowID = "Total"

// Trade is one closed trade in canonical form. NetPnL is derived once
// at normalization time and never recomputed.
type Trade struct {
	ID         string
	CloseTime  time.Time
	Profit     float64
	Commission float64
	Swap       float64
	NetPnL     float64
}

// DayKey returns the calendar date of ts in loc as YYYY-MM-DD. Keys
// in this format sort lexicographically in chronological order, so
// they double as day sort keys.
func DayKey(ts time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return ts.In(loc).Format("2006-01-02")
}
