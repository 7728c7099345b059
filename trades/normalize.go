package trades

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kalabhaftu/propcheck/statement"
)

// Normalizer converts raw statement rows into an ordered trade
// sequence. Statement timestamps carry no zone marker, so they are
// parsed in Loc (UTC when nil).
//
// Normalization is deliberately lenient: the summary row and rows
// without a usable close time are dropped, missing numeric fields
// become zero. None of that is an error; broker exports are messy and
// the compliance rules only care about trades that actually closed.
type Normalizer struct {
	Loc *time.Location
	Log *zap.Logger
}

// NewNormalizer returns a Normalizer parsing close times in loc.
func NewNormalizer(loc *time.Location, log *zap.Logger) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{Loc: loc, Log: log}
}

// Normalize maps rows to Trades, skipping the "Total" summary row and
// any row whose Close Time is empty or unparsable, then sorts the
// result ascending by close time. The sort is stable, so trades that
// closed in the same second keep their statement order.
func (n *Normalizer) Normalize(rows []statement.Row) []Trade {
	out := make([]Trade, 0, len(rows))

	for i, row := range rows {
		id := strings.TrimSpace(row["ID"])
		if id == TotalRowID {
			continue
		}

		ct := strings.TrimSpace(row["Close Time"])
		if ct == "" {
			n.Log.Debug("dropping row without close time",
				zap.Int("row", i), zap.String("id", id))
			continue
		}
		closeTime, err := time.ParseInLocation(CloseTimeLayout, ct, n.Loc)
		if err != nil {
			n.Log.Debug("dropping row with unparsable close time",
				zap.Int("row", i), zap.String("id", id), zap.String("close_time", ct))
			continue
		}

		t := Trade{
			ID:         id,
			CloseTime:  closeTime,
			Profit:     num(row["Profit"]),
			Commission: num(row["Commission"]),
			Swap:       num(row["Swap"]),
		}
		t.NetPnL = t.Profit + t.Commission + t.Swap
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CloseTime.Before(out[j].CloseTime)
	})
	return out
}

// num parses a statement cell as a float. Empty and unparsable cells
// are zero, matching the export's habit of leaving flat fields blank.
func num(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
