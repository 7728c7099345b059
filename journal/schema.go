package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	close_time DATETIME NOT NULL,
	profit REAL NOT NULL,
	commission REAL NOT NULL,
	swap REAL NOT NULL,
	net_pnl REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_close_time ON trades(close_time);
`
