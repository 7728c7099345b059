package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/kalabhaftu/propcheck/trades"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func testTrade(id string, closeTime time.Time, profit, commission, swap float64) trades.Trade {
	return trades.Trade{
		ID:         id,
		CloseTime:  closeTime,
		Profit:     profit,
		Commission: commission,
		Swap:       swap,
		NetPnL:     profit + commission + swap,
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='trades'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteImportAndList(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	t1 := time.Date(2025, 12, 24, 13, 21, 0, 0, time.UTC)
	t2 := time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)

	// Imported out of chronological order on purpose.
	err := j.ImportTrades([]trades.Trade{
		testTrade("2", t1, -120.5, -2.5, 1),
		testTrade("1", t2, 100, -7, -3),
	})
	assert.NoError(t, err)

	got, err := j.ListTrades()
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	// Listed ascending by close time.
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.True(t, got[0].CloseTime.Equal(t2))
	assert.True(t, got[1].CloseTime.Equal(t1))
	assert.InDelta(t, 90, got[0].NetPnL, 1e-9)
	assert.InDelta(t, -122, got[1].NetPnL, 1e-9)
}

func TestSQLiteReimportIsIdempotent(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	tt := []trades.Trade{
		testTrade("1", time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC), 100, 0, 0),
		testTrade("2", time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC), -50, 0, 0),
	}

	assert.NoError(t, j.ImportTrades(tt))
	assert.NoError(t, j.ImportTrades(tt))

	got, err := j.ListTrades()
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSQLiteListTradesClosedBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	day1 := time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, j.ImportTrades([]trades.Trade{
		testTrade("1", day1, 10, 0, 0),
		testTrade("2", day2, 20, 0, 0),
	}))

	start := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	got, err := j.ListTradesClosedBetween(start, end)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
