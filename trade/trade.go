// Package trade defines the canonical trade record shared by the filter,
// statistics, aggregation and import/export layers.
package trade

import (
	"sort"
	"strings"
	"time"
)

type Side string

const (
	Long  Side = "LONG"
	Short Side = "SHORT"
)

type Status string

const (
	Open   Status = "OPEN"
	Closed Status = "CLOSED"
)

// Type records provenance: trades journaled live versus trades brought in
// from an import or a backtest. Backtest trades can be excluded from live
// statistics at filter time.
type Type string

const (
	TypeJournal  Type = "journal"
	TypeImported Type = "imported"
	TypeBacktest Type = "backtest"
)

// DefaultExchange is used when a trade carries no exchange of its own.
const DefaultExchange = "Manual"

// Trade is an immutable value once created. The analytics core treats the
// pool as borrowed, read-only input; edits and deletes happen upstream and
// simply change the pool handed to the next computation.
type Trade struct {
	ID      string
	Account string

	Symbol   string
	Side     Side
	Exchange string

	EntryPrice float64
	ExitPrice  float64
	Quantity   float64
	Leverage   float64
	Capital    float64

	Status        Status
	Pnl           float64
	PnlPercentage float64

	EntryDate time.Time
	// ExitDate is the zero time while the trade is open. It is never
	// fabricated before EntryDate.
	ExitDate time.Time

	Strategy     string
	Setups       []string
	Tags         []string
	EntryReasons []string
	MentalState  []string

	// ExitQuality is a subjective 0-5 post-trade rating.
	ExitQuality int

	TradeType Type
}

// IsClosed reports whether the trade counts toward performance ratios.
func (t Trade) IsClosed() bool { return t.Status == Closed }

// CloseOrEntry returns the exit date, falling back to the entry date when
// the trade has no exit. Every downstream statistic (streaks, equity curve,
// drawdown, current streak) orders closed trades by this key.
func (t Trade) CloseOrEntry() time.Time {
	if t.ExitDate.IsZero() {
		return t.EntryDate
	}
	return t.ExitDate
}

// Labels returns tags, entry reasons and mental-state entries as one set.
// Facet filtering treats the three fields interchangeably.
func (t Trade) Labels() []string {
	out := make([]string, 0, len(t.Tags)+len(t.EntryReasons)+len(t.MentalState))
	out = append(out, t.Tags...)
	out = append(out, t.EntryReasons...)
	out = append(out, t.MentalState...)
	return out
}

// SortChronological orders trades ascending by exit-or-entry date. The sort
// is stable so equal timestamps keep their pool order.
func SortChronological(trades []Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].CloseOrEntry().Before(trades[j].CloseOrEntry())
	})
}

// NormalizeSymbol upper-cases and strips underscore and slash separators.
// An empty result becomes the UNKNOWN placeholder; the importer drops such
// rows rather than surfacing them.
func NormalizeSymbol(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "/", "")
	if s == "" {
		return "UNKNOWN"
	}
	return s
}

// DerivePnl computes realized P/L from prices and size. A closed trade must
// always end up with a deterministic pnl even when the source omits one.
func DerivePnl(side Side, entry, exit, qty float64) float64 {
	if side == Short {
		return (entry - exit) * qty
	}
	return (exit - entry) * qty
}

// ClampQuality coerces an exit-quality rating into the 0-5 range.
func ClampQuality(q int) int {
	if q < 0 {
		return 0
	}
	if q > 5 {
		return 5
	}
	return q
}
