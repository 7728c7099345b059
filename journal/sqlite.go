package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kalabhaftu/propcheck/trades"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// ImportTrades upserts the trades in one transaction. Re-importing
// the same statement is idempotent: rows are keyed by trade id.
func (j *SQLite) ImportTrades(tt []trades.Trade) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trades
		(trade_id, close_time, profit, commission, swap, net_pnl)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range tt {
		if _, err := stmt.Exec(t.ID, t.CloseTime, t.Profit, t.Commission, t.Swap, t.NetPnL); err != nil {
			tx.Rollback()
			return fmt.Errorf("import trade %q: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
