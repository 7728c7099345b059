package compliance

import (
	"time"

	"go.uber.org/zap"

	"github.com/kalabhaftu/propcheck/trades"
)

// Evaluator runs a trade history against one Policy. DayBoundary is
// the timezone whose midnight separates trading days; brokers and
// firms disagree on this, so it is explicit configuration rather than
// an assumption baked into the grouping. The zero value is not
// usable; construct with New so the policy is validated up front.
type Evaluator struct {
	Policy      Policy
	DayBoundary *time.Location
	Log         *zap.Logger
}

// New validates p and returns an Evaluator grouping days at UTC
// midnight. Callers override DayBoundary/Log after construction.
func New(p Policy) (*Evaluator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{
		Policy:      p,
		DayBoundary: time.UTC,
		Log:         zap.NewNop(),
	}, nil
}

// Evaluate produces a Report for tt, which must already be sorted
// ascending by close time (the normalizer's output guarantee). An
// empty history is valid: no days, minimum balance equal to the
// account size, no violation.
//
// Two passes share the input. The daily pass groups trades by
// calendar day and tests each day's net loss against the fixed-base
// daily limit. The max-drawdown pass simulates the balance trade by
// trade through MinBalance; it is order-sensitive where the daily
// sums are not.
func (e *Evaluator) Evaluate(tt []trades.Trade) Report {
	rep := Report{Policy: e.Policy}

	loc := e.DayBoundary
	if loc == nil {
		loc = time.UTC
	}
	dailyLimit := e.Policy.DailyLimit()

	// Partition by day, keeping first-occurrence order. The input is
	// time-sorted, so this is also chronological day order.
	dayIdx := make(map[string]int)
	var days [][]trades.Trade
	var keys []string
	for _, t := range tt {
		key := trades.DayKey(t.CloseTime, loc)
		i, ok := dayIdx[key]
		if !ok {
			i = len(days)
			dayIdx[key] = i
			days = append(days, nil)
			keys = append(keys, key)
		}
		days[i] = append(days[i], t)
	}

	balance := e.Policy.AccountSize
	for i, dayTrades := range days {
		var net float64
		for _, t := range dayTrades {
			net += t.NetPnL
		}
		loss := 0.0
		if net < 0 {
			loss = -net
		}

		day := DayResult{
			Date:         keys[i],
			TradeCount:   len(dayTrades),
			NetPnL:       net,
			DayLoss:      loss,
			StartBalance: balance,
			EndBalance:   balance + net,
			Breached:     loss > dailyLimit,
		}
		if day.Breached {
			day.ExceededBy = loss - dailyLimit
			rep.ViolationFound = true
			e.Log.Debug("daily drawdown limit breached",
				zap.String("date", day.Date),
				zap.Float64("day_loss", day.DayLoss),
				zap.Float64("limit", dailyLimit))
		}

		rep.Days = append(rep.Days, day)
		balance = day.EndBalance
	}

	rep.MaxDrawdown = e.maxDrawdown(tt)
	if rep.MaxDrawdown.Breached {
		rep.ViolationFound = true
		e.Log.Debug("max drawdown limit breached",
			zap.Float64("used", rep.MaxDrawdown.Used),
			zap.Float64("limit", rep.MaxDrawdown.Limit))
	}

	return rep
}
