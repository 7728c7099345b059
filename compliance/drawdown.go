package compliance

import "github.com/kalabhaftu/propcheck/trades"

// MinBalance replays every trade's NetPnL against a running balance
// starting at start and returns the lowest balance reached at any
// point, mid-day troughs included. The input order is the evaluation
// order; callers pass the chronologically sorted sequence.
//
// This is the single implementation of the running-balance minimum.
// Every drawdown rule goes through it so day-major and trade-major
// call sites cannot drift apart.
func MinBalance(tt []trades.Trade, start float64) float64 {
	balance, min := start, start
	for _, t := range tt {
		balance += t.NetPnL
		if balance < min {
			min = balance
		}
	}
	return min
}

func (e *Evaluator) maxDrawdown(tt []trades.Trade) DrawdownResult {
	min := MinBalance(tt, e.Policy.AccountSize)

	used := e.Policy.AccountSize - min
	if used < 0 {
		// Balance never dipped below its start; a gain is not drawdown.
		used = 0
	}

	res := DrawdownResult{
		MinBalance: min,
		Used:       used,
		Limit:      e.Policy.MaxDrawdownLimit(),
	}
	res.Breached = res.Used > res.Limit
	if res.Breached {
		res.ExceededBy = res.Used - res.Limit
	}
	return res
}
