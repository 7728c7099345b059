package journal

import (
	"time"

	"github.com/kalabhaftu/propcheck/trades"
)

const selectCols = `trade_id, close_time, profit, commission, swap, net_pnl`

// ListTrades returns every stored trade ordered by close time, ties
// broken by insertion order. The result feeds the evaluator directly.
func (j *SQLite) ListTrades() ([]trades.Trade, error) {
	rows, err := j.db.Query(`
		SELECT ` + selectCols + `
		FROM trades
		ORDER BY close_time ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

// ListTradesClosedBetween returns trades whose close_time is within
// [start, end), ordered by close time.
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]trades.Trade, error) {
	rows, err := j.db.Query(`
		SELECT `+selectCols+`
		FROM trades
		WHERE close_time >= ? AND close_time < ?
		ORDER BY close_time ASC, rowid ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTrades(rows rowScanner) ([]trades.Trade, error) {
	var out []trades.Trade
	for rows.Next() {
		var t trades.Trade
		if err := rows.Scan(
			&t.ID,
			&t.CloseTime,
			&t.Profit,
			&t.Commission,
			&t.Swap,
			&t.NetPnL,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
