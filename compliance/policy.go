package compliance

import "fmt"

// Policy holds a prop firm's account and drawdown limits. Both limits
// are fixed-base: percentages of the original account size, not of
// the equity entering a day. Firms that advertise "4% daily / 8% max"
// on a static base mean exactly this.
type Policy struct {
	AccountSize      float64 `json:"account_size" yaml:"account_size"`
	DailyDrawdownPct float64 `json:"daily_drawdown_percent" yaml:"daily_drawdown_percent"`
	MaxDrawdownPct   float64 `json:"max_drawdown_percent" yaml:"max_drawdown_percent"`
}

// DailyLimit is the largest single-day loss the policy tolerates.
func (p Policy) DailyLimit() float64 {
	return p.AccountSize * p.DailyDrawdownPct / 100
}

// MaxDrawdownLimit is the largest cumulative drawdown from the
// starting balance the policy tolerates.
func (p Policy) MaxDrawdownLimit() float64 {
	return p.AccountSize * p.MaxDrawdownPct / 100
}

// Validate checks the policy before any evaluation runs. A bad policy
// must fail here rather than produce a misleading report.
func (p Policy) Validate() error {
	if p.AccountSize <= 0 {
		return fmt.Errorf("account size must be positive, got %.2f", p.AccountSize)
	}
	if p.DailyDrawdownPct < 0 {
		return fmt.Errorf("daily drawdown percent must not be negative, got %.2f", p.DailyDrawdownPct)
	}
	if p.MaxDrawdownPct < 0 {
		return fmt.Errorf("max drawdown percent must not be negative, got %.2f", p.MaxDrawdownPct)
	}
	return nil
}
