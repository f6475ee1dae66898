package stats

import (
	"time"

	"github.com/rustyeddy/journal/trade"
)

// Equity is the result of one forward pass over the ascending closed-trade
// sequence.
type Equity struct {
	// FinalBalance is the cumulative realized PnL after the last trade.
	FinalBalance float64
	// Peak is the highest balance reached.
	Peak float64
	// MaxDrawdown is the largest peak-to-trough gap observed, in currency
	// units, not percentage.
	MaxDrawdown float64
	// MaxRecoveryTime is the longest wall-clock gap between a peak and the
	// next peak that exceeded it.
	MaxRecoveryTime time.Duration
}

// equityAcc carries the fold state. Recovery time is measured between
// consecutive peak-setting events: a new peak immediately after the old
// one yields zero, and the counter only updates when a new peak follows a
// drawdown period.
type equityAcc struct {
	balance     float64
	peak        float64
	peakTime    time.Time
	inDrawdown  bool
	maxDD       float64
	maxRecovery time.Duration
}

// TrackEquity scans closed trades in ascending exit-or-entry order. The
// input must already be ordered; Compute and Closed take care of that.
func TrackEquity(closed []trade.Trade) Equity {
	if len(closed) == 0 {
		return Equity{}
	}

	// The pre-trade peak (balance 0) is anchored at the first trade's
	// timestamp so a recovery measured from it never exceeds the span of
	// the sequence.
	acc := equityAcc{peakTime: closed[0].CloseOrEntry()}

	for _, t := range closed {
		acc = acc.step(t.Pnl, t.CloseOrEntry())
	}

	return Equity{
		FinalBalance:    acc.balance,
		Peak:            acc.peak,
		MaxDrawdown:     acc.maxDD,
		MaxRecoveryTime: acc.maxRecovery,
	}
}

func (a equityAcc) step(pnl float64, at time.Time) equityAcc {
	a.balance += pnl

	if a.balance > a.peak {
		if a.inDrawdown {
			if rec := at.Sub(a.peakTime); rec > a.maxRecovery {
				a.maxRecovery = rec
			}
			a.inDrawdown = false
		}
		a.peak = a.balance
		a.peakTime = at
		return a
	}

	if a.balance < a.peak {
		a.inDrawdown = true
		if dd := a.peak - a.balance; dd > a.maxDD {
			a.maxDD = dd
		}
	}
	return a
}
