// Package journal owns the trade pool: facet and date-window filtering,
// CSV import and export, and the SQLite store trades persist in.
//
// The analytics packages (stats, deepdive, report) take the filtered pool
// as read-only input and never mutate it.
package journal

import (
	"time"

	"github.com/rustyeddy/journal/trade"
)

// Journal is the persistence boundary for the trade pool.
type Journal interface {
	RecordTrade(trade.Trade) error
	GetTrade(id string) (trade.Trade, error)
	ListTrades() ([]trade.Trade, error)
	ListTradesClosedBetween(start, end time.Time) ([]trade.Trade, error)
	DeleteTrade(id string) error
	Close() error
}
