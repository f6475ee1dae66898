// Package stats computes performance metrics over a closed-trade sequence.
//
// Every function is a pure function of its input: no shared state, no I/O.
// Numeric degeneracy (zero trades, zero losses, zero variance) always
// resolves to a defined sentinel or zero; nothing here returns an error or
// produces a NaN.
package stats

import (
	"math"
	"time"

	"github.com/rustyeddy/journal/trade"
)

// ProfitFactorCap stands in for "infinite" when there are wins but no
// losses. A sentinel keeps the value representable and comparable.
const ProfitFactorCap = 999

type StreakType string

const (
	StreakWin  StreakType = "WIN"
	StreakLoss StreakType = "LOSS"
	StreakNone StreakType = "NONE"
)

// Summary is the flat bag of scalar metrics for one filtered trade set.
type Summary struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64

	GrossWin     float64
	GrossLoss    float64
	NetPnl       float64
	ProfitFactor float64
	Expectancy   float64

	AvgWin  float64
	AvgLoss float64

	HighestWin     float64
	HighestLoss    float64
	HighestWinPct  float64
	HighestLossPct float64

	MeanPnl      float64
	StdDev       float64
	SharpeRatio  float64
	SortinoRatio float64

	MaxWinStreak      int
	MaxLossStreak     int
	CurrentStreak     int
	CurrentStreakType StreakType

	MaxDrawdown     float64
	MaxRecoveryTime time.Duration
	RecoveryFactor  float64
}

// Closed selects CLOSED trades and orders them ascending by exit date,
// falling back to entry date. This ordering is load-bearing: streaks, the
// equity curve and the current streak all depend on it.
func Closed(trades []trade.Trade) []trade.Trade {
	out := make([]trade.Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsClosed() {
			out = append(out, t)
		}
	}
	trade.SortChronological(out)
	return out
}

// Compute derives the full summary for a trade set. Open trades are
// excluded from every ratio.
func Compute(trades []trade.Trade) Summary {
	closed := Closed(trades)
	n := len(closed)

	var s Summary
	s.TotalTrades = n
	s.CurrentStreakType = StreakNone
	if n == 0 {
		return s
	}

	for _, t := range closed {
		// A zero-PnL trade counts as a loss. The asymmetry keeps
		// winningTrades + losingTrades == closedTrades.
		if t.Pnl > 0 {
			s.WinningTrades++
			s.GrossWin += t.Pnl
			if t.Pnl > s.HighestWin {
				s.HighestWin = t.Pnl
			}
			if t.PnlPercentage > s.HighestWinPct {
				s.HighestWinPct = t.PnlPercentage
			}
		} else {
			s.LosingTrades++
			s.GrossLoss += -t.Pnl
			if t.Pnl < s.HighestLoss {
				s.HighestLoss = t.Pnl
			}
			if t.PnlPercentage < s.HighestLossPct {
				s.HighestLossPct = t.PnlPercentage
			}
		}
	}

	s.WinRate = 100 * float64(s.WinningTrades) / float64(n)
	s.NetPnl = s.GrossWin - s.GrossLoss
	s.Expectancy = s.NetPnl / float64(n)

	switch {
	case s.GrossLoss > 0:
		s.ProfitFactor = s.GrossWin / s.GrossLoss
	case s.GrossWin > 0:
		s.ProfitFactor = ProfitFactorCap
	}

	if s.WinningTrades > 0 {
		s.AvgWin = s.GrossWin / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		// Kept negative by convention.
		s.AvgLoss = -s.GrossLoss / float64(s.LosingTrades)
	}

	s.MeanPnl = s.NetPnl / float64(n)
	s.StdDev, s.SharpeRatio, s.SortinoRatio = riskRatios(closed, s.MeanPnl)

	s.MaxWinStreak, s.MaxLossStreak, s.CurrentStreak, s.CurrentStreakType = streaks(closed)

	eq := TrackEquity(closed)
	s.MaxDrawdown = eq.MaxDrawdown
	s.MaxRecoveryTime = eq.MaxRecoveryTime
	if eq.MaxDrawdown > 0 {
		s.RecoveryFactor = s.NetPnl / eq.MaxDrawdown
	}

	return s
}

// riskRatios computes population standard deviation and the per-trade
// Sharpe and Sortino ratios. These are unannualized by design; do not
// rescale them by time.
func riskRatios(closed []trade.Trade, mean float64) (stdDev, sharpe, sortino float64) {
	n := float64(len(closed))

	var variance, downside float64
	for _, t := range closed {
		d := t.Pnl - mean
		variance += d * d
		if t.Pnl < 0 {
			downside += t.Pnl * t.Pnl
		}
	}
	// Population variance: divide by N, not N-1. Downside variance also
	// divides by N rather than the losing-trade count (whole-population
	// downside deviation).
	variance /= n
	downside /= n

	stdDev = math.Sqrt(variance)
	if stdDev > 0 {
		sharpe = mean / stdDev
	}
	if dd := math.Sqrt(downside); dd > 0 {
		sortino = mean / dd
	}
	return stdDev, sharpe, sortino
}

// streaks folds over the ascending sequence. A streak breaks only when the
// win/loss sign changes; zero PnL counts as a loss, consistent with the
// win rate. The current streak is the unbroken run ending at the last
// trade.
func streaks(closed []trade.Trade) (maxWin, maxLoss, current int, typ StreakType) {
	if len(closed) == 0 {
		return 0, 0, 0, StreakNone
	}

	var winRun, lossRun int
	for _, t := range closed {
		if t.Pnl > 0 {
			winRun++
			lossRun = 0
			if winRun > maxWin {
				maxWin = winRun
			}
		} else {
			lossRun++
			winRun = 0
			if lossRun > maxLoss {
				maxLoss = lossRun
			}
		}
	}

	if winRun > 0 {
		return maxWin, maxLoss, winRun, StreakWin
	}
	return maxWin, maxLoss, lossRun, StreakLoss
}
