// Package deepdive provides the group-by-and-rank reports: per-key win
// rate, PnL and count over an arbitrary trade attribute, plus the calendar
// rollups.
package deepdive

import (
	"fmt"
	"sort"

	"github.com/rustyeddy/journal/trade"
)

// Group is one bucket of the breakdown. Groups are never created with a
// zero count.
type Group struct {
	Key      string  `json:"key"`
	Pnl      float64 `json:"pnl"`
	Count    int     `json:"count"`
	WinCount int     `json:"winCount"`
}

// WinRate is the percentage of winning trades in the group.
func (g Group) WinRate() float64 {
	if g.Count == 0 {
		return 0
	}
	return 100 * float64(g.WinCount) / float64(g.Count)
}

// KeyFunc maps a trade to its bucket.
type KeyFunc func(trade.Trade) string

// Aggregate reduces trades into groups sorted by descending summed pnl.
// Ties break on key so output stays deterministic.
func Aggregate(trades []trade.Trade, key KeyFunc) []Group {
	byKey := make(map[string]*Group)
	for _, t := range trades {
		k := key(t)
		g, ok := byKey[k]
		if !ok {
			g = &Group{Key: k}
			byKey[k] = g
		}
		g.Pnl += t.Pnl
		g.Count++
		if t.Pnl > 0 {
			g.WinCount++
		}
	}

	out := make([]Group, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pnl != out[j].Pnl {
			return out[i].Pnl > out[j].Pnl
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Stock key functions for the standard breakdowns.

func BySymbol(t trade.Trade) string { return t.Symbol }

func ByStrategy(t trade.Trade) string {
	if t.Strategy == "" {
		return "No Strategy"
	}
	return t.Strategy
}

func ByWeekday(t trade.Trade) string { return t.EntryDate.Weekday().String() }

// ByHour buckets on the entry hour as "H:00".
func ByHour(t trade.Trade) string { return fmt.Sprintf("%d:00", t.EntryDate.Hour()) }

func BySide(t trade.Trade) string { return string(t.Side) }

func ByExchange(t trade.Trade) string {
	if t.Exchange == "" {
		return trade.DefaultExchange
	}
	return t.Exchange
}
