package compliance

import "time"

// DayResult is the daily-drawdown verdict for one trading day.
// StartBalance/EndBalance track the day-major running balance and are
// informational; the breach test uses DayLoss against the fixed-base
// daily limit only.
type DayResult struct {
	Date         string  `json:"date"`
	TradeCount   int     `json:"trade_count"`
	NetPnL       float64 `json:"net_pnl"`
	DayLoss      float64 `json:"day_loss"`
	StartBalance float64 `json:"start_balance"`
	EndBalance   float64 `json:"end_balance"`
	Breached     bool    `json:"breached"`
	ExceededBy   float64 `json:"exceeded_by,omitempty"`
}

// DrawdownResult is the global max-drawdown verdict. MinBalance is
// the lowest balance the trade-level simulation ever reached; Used is
// clamped to zero when the account never dipped below its start.
type DrawdownResult struct {
	MinBalance float64 `json:"min_balance"`
	Used       float64 `json:"used"`
	Limit      float64 `json:"limit"`
	Breached   bool    `json:"breached"`
	ExceededBy float64 `json:"exceeded_by,omitempty"`
}

// Report is the full outcome of one compliance run. RunID and
// Generated are stamped by the caller (the evaluation itself is
// deterministic); everything else is immutable once produced.
type Report struct {
	RunID     string    `json:"run_id,omitempty"`
	Generated time.Time `json:"generated,omitempty"`

	Policy      Policy         `json:"policy"`
	Days        []DayResult    `json:"days"`
	MaxDrawdown DrawdownResult `json:"max_drawdown"`

	ViolationFound bool `json:"violation_found"`
}
