package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/journal/trade"
)

var filterNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testPool() []trade.Trade {
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 9, 0, 0, 0, time.UTC)
	}
	return []trade.Trade{
		{
			ID: "T1", Symbol: "BTCUSDT", Exchange: "Binance", Side: trade.Long,
			Strategy: "Breakout", Setups: []string{"flag"},
			Tags: []string{"fomo"}, ExitQuality: 3,
			EntryDate: day(1), TradeType: trade.TypeJournal,
		},
		{
			ID: "T2", Symbol: "ETHUSDT", Exchange: "Bybit", Side: trade.Short,
			Strategy: "Reversal", EntryReasons: []string{"news"},
			ExitQuality: 5, EntryDate: day(10), TradeType: trade.TypeJournal,
		},
		{
			ID: "T3", Symbol: "BTCUSDT", Exchange: "Binance", Side: trade.Short,
			MentalState: []string{"fomo"}, ExitQuality: 3,
			EntryDate: day(14), TradeType: trade.TypeBacktest,
		},
	}
}

func ids(trades []trade.Trade) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}

func TestFilterNoFacetsIsNoOp(t *testing.T) {
	t.Parallel()

	got := filterAt(filterNow, testPool(), Facets{}, DateWindow{Kind: Lifetime})
	assert.Len(t, got, 3)
}

func TestFilterAllValueIsNoOp(t *testing.T) {
	t.Parallel()

	got := filterAt(filterNow, testPool(), Facets{Symbol: "All", Side: "All"}, DateWindow{})
	assert.Len(t, got, 3)
}

func TestFilterFacetsCompose(t *testing.T) {
	t.Parallel()

	got := filterAt(filterNow, testPool(), Facets{Symbol: "BTCUSDT", Side: "SHORT"}, DateWindow{})
	require.Len(t, got, 1)
	assert.Equal(t, "T3", got[0].ID)
}

func TestFilterLabelUnionSemantics(t *testing.T) {
	t.Parallel()

	// "fomo" lives in T1's tags and T3's mental state; either counts.
	got := filterAt(filterNow, testPool(), Facets{Label: "fomo"}, DateWindow{})
	assert.ElementsMatch(t, []string{"T1", "T3"}, ids(got))
}

func TestFilterQualityBucketLabel(t *testing.T) {
	t.Parallel()

	got := filterAt(filterNow, testPool(), Facets{Quality: "3 Stars"}, DateWindow{})
	assert.ElementsMatch(t, []string{"T1", "T3"}, ids(got))

	got = filterAt(filterNow, testPool(), Facets{Quality: "5 Stars"}, DateWindow{})
	assert.ElementsMatch(t, []string{"T2"}, ids(got))

	got = filterAt(filterNow, testPool(), Facets{Quality: "not a bucket"}, DateWindow{})
	assert.Empty(t, got)
}

func TestFilterSetupMembership(t *testing.T) {
	t.Parallel()

	got := filterAt(filterNow, testPool(), Facets{Setup: "flag"}, DateWindow{})
	assert.ElementsMatch(t, []string{"T1"}, ids(got))
}

func TestFilterLiveOnlyExcludesBacktests(t *testing.T) {
	t.Parallel()

	got := filterAt(filterNow, testPool(), Facets{LiveOnly: true}, DateWindow{})
	assert.ElementsMatch(t, []string{"T1", "T2"}, ids(got))
}

func TestFilterRelativeWindowBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	pool := []trade.Trade{
		{ID: "recent", EntryDate: now.AddDate(0, 0, -29)},
		{ID: "edge", EntryDate: now.AddDate(0, 0, -30)},
		{ID: "old", EntryDate: now.AddDate(0, 0, -31)},
	}

	got := filterAt(now, pool, Facets{}, DateWindow{Kind: Relative, Days: 30})
	assert.ElementsMatch(t, []string{"recent", "edge"}, ids(got))
}

func TestFilterAbsoluteWindowInclusiveBounds(t *testing.T) {
	t.Parallel()

	pool := []trade.Trade{
		{ID: "before", EntryDate: time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)},
		{ID: "first-instant", EntryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "last-instant", EntryDate: time.Date(2024, 6, 30, 23, 59, 59, 999000000, time.UTC)},
		{ID: "after", EntryDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	w := DateWindow{
		Kind:  Absolute,
		Start: time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC), // time-of-day ignored
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	got := filterAt(filterNow, pool, Facets{}, w)
	assert.ElementsMatch(t, []string{"first-instant", "last-instant"}, ids(got))
}

func TestFilterWindowExcludesZeroEntryDates(t *testing.T) {
	t.Parallel()

	pool := []trade.Trade{{ID: "undated"}}

	assert.Empty(t, filterAt(filterNow, pool, Facets{}, DateWindow{Kind: Relative, Days: 30000}))
	assert.Empty(t, filterAt(filterNow, pool, Facets{}, DateWindow{
		Kind:  Absolute,
		Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	// Lifetime keeps everything.
	assert.Len(t, filterAt(filterNow, pool, Facets{}, DateWindow{Kind: Lifetime}), 1)
}
