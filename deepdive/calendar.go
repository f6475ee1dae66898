package deepdive

import (
	"time"

	"github.com/rustyeddy/journal/trade"
)

// DayCell is one cell of the 7-column calendar grid. Blank cells (Day 0)
// pad the first week so day 1 lands under its weekday.
type DayCell struct {
	Day      int     `json:"day"`
	Pnl      float64 `json:"pnl"`
	Count    int     `json:"count"`
	WinCount int     `json:"winCount"`
}

// Blank reports whether the cell is leading padding.
func (c DayCell) Blank() bool { return c.Day == 0 }

// Month builds the daily calendar for one month. Only closed trades count,
// bucketed by the local calendar date of the exit, falling back to entry.
func Month(trades []trade.Trade, year int, month time.Month, loc *time.Location) []DayCell {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{})
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, DayCell{Day: d})
	}

	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		at := t.CloseOrEntry().In(loc)
		if at.Year() != year || at.Month() != month {
			continue
		}
		c := &cells[int(first.Weekday())+at.Day()-1]
		c.Pnl += t.Pnl
		c.Count++
		if t.Pnl > 0 {
			c.WinCount++
		}
	}
	return cells
}

// MonthlyTotals rolls closed trades up by month, keyed "2006-01", sorted
// by descending pnl like every other breakdown.
func MonthlyTotals(trades []trade.Trade, loc *time.Location) []Group {
	if loc == nil {
		loc = time.Local
	}
	closed := make([]trade.Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsClosed() {
			closed = append(closed, t)
		}
	}
	return Aggregate(closed, func(t trade.Trade) string {
		return t.CloseOrEntry().In(loc).Format("2006-01")
	})
}
