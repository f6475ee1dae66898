package stats

import (
	"github.com/rustyeddy/journal/config"
	"github.com/rustyeddy/journal/trade"
)

// FeeReport estimates round-trip trading costs for a closed-trade set.
type FeeReport struct {
	Total      float64
	ByExchange map[string]float64
}

// EstimateFees resolves each trade's fee schedule by exchange, falling
// back to the user-level default. Percentage schedules charge rate times
// the entry notional plus rate times the exit notional; when no exit price
// is recorded the entry price stands in. Fixed schedules charge the flat
// amount twice (entry + exit) regardless of size.
func EstimateFees(trades []trade.Trade, fees config.Fees) FeeReport {
	rep := FeeReport{ByExchange: make(map[string]float64)}

	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		fee := tradeFee(t, fees.ForExchange(t.Exchange))
		rep.Total += fee
		rep.ByExchange[t.Exchange] += fee
	}
	return rep
}

func tradeFee(t trade.Trade, s config.FeeSchedule) float64 {
	if s.Kind == config.FeeFixed {
		return s.Amount * 2
	}

	exit := t.ExitPrice
	if exit <= 0 {
		exit = t.EntryPrice
	}
	return s.Rate*(t.EntryPrice*t.Quantity) + s.Rate*(exit*t.Quantity)
}
