package trade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BTCUSDT", NormalizeSymbol("btc_usdt"))
	assert.Equal(t, "ETHUSD", NormalizeSymbol("ETH/USD"))
	assert.Equal(t, "EURUSD", NormalizeSymbol("  eur_usd "))
	assert.Equal(t, "UNKNOWN", NormalizeSymbol(""))
	assert.Equal(t, "UNKNOWN", NormalizeSymbol(" _/ "))
}

func TestDerivePnl(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100.0, DerivePnl(Long, 100, 110, 10), 1e-9)
	assert.InDelta(t, -100.0, DerivePnl(Long, 110, 100, 10), 1e-9)
	assert.InDelta(t, 100.0, DerivePnl(Short, 110, 100, 10), 1e-9)
	assert.InDelta(t, -100.0, DerivePnl(Short, 100, 110, 10), 1e-9)
}

func TestClampQuality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ClampQuality(-3))
	assert.Equal(t, 3, ClampQuality(3))
	assert.Equal(t, 5, ClampQuality(9))
}

func TestCloseOrEntryFallback(t *testing.T) {
	t.Parallel()

	entry := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	exit := entry.Add(2 * time.Hour)

	open := Trade{EntryDate: entry}
	closed := Trade{EntryDate: entry, ExitDate: exit}

	assert.True(t, open.CloseOrEntry().Equal(entry))
	assert.True(t, closed.CloseOrEntry().Equal(exit))
}

func TestSortChronologicalUsesExitFallingBackToEntry(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	trades := []Trade{
		{ID: "late", EntryDate: day(1), ExitDate: day(9)},
		{ID: "open-middle", EntryDate: day(5)}, // no exit, sorts by entry
		{ID: "early", EntryDate: day(1), ExitDate: day(2)},
	}

	SortChronological(trades)

	assert.Equal(t, "early", trades[0].ID)
	assert.Equal(t, "open-middle", trades[1].ID)
	assert.Equal(t, "late", trades[2].ID)
}

func TestLabelsUnion(t *testing.T) {
	t.Parallel()

	tr := Trade{
		Tags:         []string{"breakout"},
		EntryReasons: []string{"news"},
		MentalState:  []string{"calm"},
	}
	assert.ElementsMatch(t, []string{"breakout", "news", "calm"}, tr.Labels())
}
