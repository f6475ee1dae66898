// Package report assembles the pipeline output: the flat metric bag plus
// named breakdown maps, recomputed from scratch on every filter change.
// Full recomputation keeps correctness simple; the pool is bounded by a
// human's trading history, so a full pass stays cheap.
package report

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/rustyeddy/journal/config"
	"github.com/rustyeddy/journal/deepdive"
	"github.com/rustyeddy/journal/journal"
	"github.com/rustyeddy/journal/stats"
	"github.com/rustyeddy/journal/trade"
)

// TradeSummary is the per-trade line of the assistant payload. Field names
// are a cross-collaborator contract; do not rename.
type TradeSummary struct {
	Symbol   string   `json:"symbol"`
	Side     string   `json:"side"`
	Pnl      float64  `json:"pnl"`
	Date     string   `json:"date"`
	Strategy string   `json:"strategy,omitempty"`
	Labels   []string `json:"labels,omitempty"`
}

// Report is consumed by the UI layer and, verbatim, by the chat-assistant
// collaborator as its "seek analysis" payload.
type Report struct {
	Period       string  `json:"period"`
	TotalTrades  int     `json:"totalTrades"`
	WinRate      float64 `json:"winRate"`
	ProfitFactor float64 `json:"profitFactor"`
	Expectancy   float64 `json:"expectancy"`
	NetPnl       float64 `json:"netPnl"`

	Stats stats.Summary   `json:"stats"`
	Fees  stats.FeeReport `json:"fees"`

	Trades     []TradeSummary              `json:"trades"`
	Breakdowns map[string][]deepdive.Group `json:"breakdowns"`
}

// Build filters the pool and recomputes the whole report.
func Build(pool []trade.Trade, facets journal.Facets, window journal.DateWindow, fees config.Fees) Report {
	filtered := journal.Filter(pool, facets, window)
	closed := stats.Closed(filtered)
	summary := stats.Compute(closed)

	r := Report{
		Period:       periodLabel(window),
		TotalTrades:  summary.TotalTrades,
		WinRate:      summary.WinRate,
		ProfitFactor: summary.ProfitFactor,
		Expectancy:   summary.Expectancy,
		NetPnl:       summary.NetPnl,
		Stats:        summary,
		Fees:         stats.EstimateFees(closed, fees),
		Trades:       make([]TradeSummary, 0, len(closed)),
		Breakdowns: map[string][]deepdive.Group{
			"symbol":   deepdive.Aggregate(closed, deepdive.BySymbol),
			"strategy": deepdive.Aggregate(closed, deepdive.ByStrategy),
			"weekday":  deepdive.Aggregate(closed, deepdive.ByWeekday),
			"hour":     deepdive.Aggregate(closed, deepdive.ByHour),
			"side":     deepdive.Aggregate(closed, deepdive.BySide),
			"exchange": deepdive.Aggregate(closed, deepdive.ByExchange),
			"month":    deepdive.MonthlyTotals(closed, nil),
		},
	}

	for _, t := range closed {
		r.Trades = append(r.Trades, TradeSummary{
			Symbol:   t.Symbol,
			Side:     string(t.Side),
			Pnl:      t.Pnl,
			Date:     t.CloseOrEntry().UTC().Format(time.RFC3339),
			Strategy: t.Strategy,
			Labels:   t.Labels(),
		})
	}
	return r
}

// JSON renders the assistant payload.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func periodLabel(w journal.DateWindow) string {
	switch w.Kind {
	case journal.Relative:
		switch w.Days {
		case 7:
			return "Last 7 days"
		case 30:
			return "Last 30 days"
		case 90:
			return "Last 90 days"
		case 365:
			return "Last year"
		default:
			return "Last " + strconv.Itoa(w.Days) + " days"
		}
	case journal.Absolute:
		return w.Start.Format("2006-01-02") + " to " + w.End.Format("2006-01-02")
	default:
		return "Lifetime"
	}
}
