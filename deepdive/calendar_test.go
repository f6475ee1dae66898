package deepdive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/journal/trade"
)

func closedOn(exit time.Time, pnl float64) trade.Trade {
	return trade.Trade{
		Symbol: "BTCUSDT", Status: trade.Closed, Pnl: pnl,
		EntryDate: exit.Add(-2 * time.Hour),
		ExitDate:  exit,
	}
}

func TestMonthGridShape(t *testing.T) {
	t.Parallel()

	// March 2024 starts on a Friday: 5 leading blanks plus 31 days.
	cells := Month(nil, 2024, time.March, time.UTC)
	require.Len(t, cells, 36)

	for i := 0; i < 5; i++ {
		assert.True(t, cells[i].Blank())
	}
	assert.Equal(t, 1, cells[5].Day)
	assert.Equal(t, 31, cells[35].Day)
}

func TestMonthBucketsTradesByExitDay(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		closedOn(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), 50),
		closedOn(time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC), -10),
		closedOn(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 100),
		closedOn(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), 999), // next month
		{Symbol: "ETHUSDT", Status: trade.Open, Pnl: 5,
			EntryDate: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
	}

	cells := Month(trades, 2024, time.March, time.UTC)
	require.Len(t, cells, 36)

	day1 := cells[5]
	assert.Equal(t, 2, day1.Count)
	assert.InDelta(t, 40.0, day1.Pnl, 1e-9)
	assert.Equal(t, 1, day1.WinCount)

	day15 := cells[5+14]
	assert.Equal(t, 1, day15.Count)
	assert.InDelta(t, 100.0, day15.Pnl, 1e-9)
}

func TestMonthRespectsLocation(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on March 1 is already March 2 in UTC+2.
	loc := time.FixedZone("UTC+2", 2*60*60)
	trades := []trade.Trade{
		closedOn(time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC), 10),
	}

	cells := Month(trades, 2024, time.March, loc)
	assert.Zero(t, cells[5].Count)
	assert.Equal(t, 1, cells[6].Count)
}

func TestMonthlyTotals(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		closedOn(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), 50),
		closedOn(time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC), 25),
		closedOn(time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC), -5),
		{Symbol: "ETHUSDT", Status: trade.Open, Pnl: 99,
			EntryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	groups := MonthlyTotals(trades, time.UTC)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-03", groups[0].Key)
	assert.InDelta(t, 75.0, groups[0].Pnl, 1e-9)
	assert.Equal(t, 2, groups[0].Count)

	assert.Equal(t, "2024-04", groups[1].Key)
	assert.InDelta(t, -5.0, groups[1].Pnl, 1e-9)
}
