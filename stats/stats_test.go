package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/journal/trade"
)

// closedSeq builds a closed-trade sequence with one trade per day, in the
// order the pnls are given.
func closedSeq(pnls ...float64) []trade.Trade {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	out := make([]trade.Trade, len(pnls))
	for i, p := range pnls {
		out[i] = trade.Trade{
			ID:        string(rune('A' + i)),
			Status:    trade.Closed,
			Pnl:       p,
			EntryDate: base.AddDate(0, 0, i),
			ExitDate:  base.AddDate(0, 0, i).Add(time.Hour),
		}
	}
	return out
}

func TestComputeBasicMetrics(t *testing.T) {
	t.Parallel()

	s := Compute(closedSeq(100, -50, 200))

	require.Equal(t, 3, s.TotalTrades)
	require.Equal(t, 2, s.WinningTrades)
	require.Equal(t, 1, s.LosingTrades)
	assert.InDelta(t, 66.6667, s.WinRate, 0.001)
	assert.InDelta(t, 300.0, s.GrossWin, 1e-9)
	assert.InDelta(t, 50.0, s.GrossLoss, 1e-9)
	assert.InDelta(t, 6.0, s.ProfitFactor, 1e-9)
	assert.InDelta(t, 250.0, s.NetPnl, 1e-9)
	assert.InDelta(t, 83.3333, s.Expectancy, 0.001)
	assert.InDelta(t, 150.0, s.AvgWin, 1e-9)
	assert.InDelta(t, -50.0, s.AvgLoss, 1e-9)
	assert.InDelta(t, 200.0, s.HighestWin, 1e-9)
	assert.InDelta(t, -50.0, s.HighestLoss, 1e-9)
}

func TestComputeHighestPctReturns(t *testing.T) {
	t.Parallel()

	// The pct highs track PnlPercentage independently of the currency
	// highs: the biggest win by pnl is not the biggest by pct here.
	seq := closedSeq(100, 200, -50, -10)
	seq[0].PnlPercentage = 5
	seq[1].PnlPercentage = 2
	seq[2].PnlPercentage = -3
	seq[3].PnlPercentage = -8

	s := Compute(seq)
	assert.InDelta(t, 200.0, s.HighestWin, 1e-9)
	assert.InDelta(t, 5.0, s.HighestWinPct, 1e-9)
	assert.InDelta(t, -50.0, s.HighestLoss, 1e-9)
	assert.InDelta(t, -8.0, s.HighestLossPct, 1e-9)
}

func TestComputePctReturnsDefaultToZero(t *testing.T) {
	t.Parallel()

	// Winners only: the loss-side pct stays at its zero fallback.
	seq := closedSeq(10, 20)
	seq[0].PnlPercentage = 1
	seq[1].PnlPercentage = 2

	s := Compute(seq)
	assert.InDelta(t, 2.0, s.HighestWinPct, 1e-9)
	assert.Zero(t, s.HighestLossPct)

	// A zero-pnl trade counts as a loss; its positive pct never becomes
	// the loss-side extreme.
	seq = closedSeq(10, 0)
	seq[0].PnlPercentage = 1
	seq[1].PnlPercentage = 0.5

	s = Compute(seq)
	assert.Equal(t, 1, s.LosingTrades)
	assert.Zero(t, s.HighestLossPct)
}

func TestComputeAllLosers(t *testing.T) {
	t.Parallel()

	s := Compute(closedSeq(-10, -20))

	assert.Zero(t, s.ProfitFactor)
	assert.InDelta(t, -15.0, s.MeanPnl, 1e-9)
	// Population std dev: sqrt(((5)^2 + (5)^2) / 2) = 5.
	assert.InDelta(t, 5.0, s.StdDev, 1e-9)
	assert.InDelta(t, -3.0, s.SharpeRatio, 1e-9)
}

func TestComputeAllWinnersHitsSentinel(t *testing.T) {
	t.Parallel()

	s := Compute(closedSeq(10, 20))
	assert.InDelta(t, float64(ProfitFactorCap), s.ProfitFactor, 1e-9)
	// No losses: downside deviation is zero, Sortino stays zero.
	assert.Zero(t, s.SortinoRatio)
	assert.Zero(t, s.AvgLoss)
}

func TestComputeEmptySetAllZero(t *testing.T) {
	t.Parallel()

	s := Compute(nil)

	assert.Zero(t, s.TotalTrades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.ProfitFactor)
	assert.Zero(t, s.Expectancy)
	assert.Zero(t, s.SharpeRatio)
	assert.Zero(t, s.SortinoRatio)
	assert.Zero(t, s.MaxDrawdown)
	assert.Equal(t, StreakNone, s.CurrentStreakType)
}

func TestComputeZeroPnlCountsAsLoss(t *testing.T) {
	t.Parallel()

	s := Compute(closedSeq(0, 10))

	assert.Equal(t, 1, s.WinningTrades)
	assert.Equal(t, 1, s.LosingTrades)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
	// Gross loss is zero but a loss was still counted.
	assert.InDelta(t, float64(ProfitFactorCap), s.ProfitFactor, 1e-9)
}

func TestComputeWinnersPlusLosersEqualsClosed(t *testing.T) {
	t.Parallel()

	sets := [][]float64{
		{},
		{0},
		{1, -1, 0, 2.5, -0.5},
		{-1, -2, -3},
		{5, 5, 5},
	}
	for _, pnls := range sets {
		s := Compute(closedSeq(pnls...))
		assert.Equal(t, s.TotalTrades, s.WinningTrades+s.LosingTrades)
	}
}

func TestComputeExcludesOpenTrades(t *testing.T) {
	t.Parallel()

	pool := closedSeq(100, -50)
	pool = append(pool, trade.Trade{
		ID:        "open",
		Status:    trade.Open,
		Pnl:       9999, // meaningless while open; must be ignored
		EntryDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	s := Compute(pool)
	assert.Equal(t, 2, s.TotalTrades)
	assert.InDelta(t, 50.0, s.NetPnl, 1e-9)
}

func TestComputeSortsBeforeFolding(t *testing.T) {
	t.Parallel()

	// Hand the sequence in reverse; streaks must still see chronological
	// order: W W L.
	seq := closedSeq(10, 20, -5)
	reversed := []trade.Trade{seq[2], seq[1], seq[0]}

	s := Compute(reversed)
	assert.Equal(t, 2, s.MaxWinStreak)
	assert.Equal(t, 1, s.MaxLossStreak)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, StreakLoss, s.CurrentStreakType)
}

func TestStreaks(t *testing.T) {
	t.Parallel()

	s := Compute(closedSeq(10, 20, -5, 5, 5, 5, -1, 0))

	assert.Equal(t, 3, s.MaxWinStreak)
	// Zero pnl extends the loss streak.
	assert.Equal(t, 2, s.MaxLossStreak)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, StreakLoss, s.CurrentStreakType)
}

func TestStreaksEndingOnWin(t *testing.T) {
	t.Parallel()

	s := Compute(closedSeq(-5, 10, 20))
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, StreakWin, s.CurrentStreakType)
}

func TestSortinoUsesWholePopulationDownside(t *testing.T) {
	t.Parallel()

	// pnls: 30, -10. mean = 10.
	// Downside variance divides the one squared loss by N=2: 100/2 = 50.
	// Sortino = 10 / sqrt(50).
	s := Compute(closedSeq(30, -10))
	assert.InDelta(t, 10.0/7.0710678, s.SortinoRatio, 1e-6)
}

func TestRecoveryFactor(t *testing.T) {
	t.Parallel()

	// Net +150 with a 50 drawdown in the middle.
	s := Compute(closedSeq(100, -50, 100))
	assert.InDelta(t, 50.0, s.MaxDrawdown, 1e-9)
	assert.InDelta(t, 3.0, s.RecoveryFactor, 1e-9)
}
