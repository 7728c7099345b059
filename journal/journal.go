// Package journal persists normalized trades so a statement can be
// imported once and re-checked against different rule sets later.
// Reports themselves are never stored; a compliance run is cheap to
// repeat from the trades.
package journal

import (
	"time"

	"github.com/kalabhaftu/propcheck/trades"
)

type Journal interface {
	ImportTrades([]trades.Trade) error
	ListTrades() ([]trades.Trade, error)
	ListTradesClosedBetween(start, end time.Time) ([]trades.Trade, error)
	Close() error
}
