package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/journal/trade"
)

// Facets selects trades by attribute. The zero value (or "All" in any
// field) matches everything; set fields compose with logical AND.
type Facets struct {
	Account  string
	Symbol   string
	Exchange string
	Strategy string
	// Setup matches trades whose setup set contains the value.
	Setup string
	Side  string
	// Quality is an exit-quality bucket label like "3 Stars"; the leading
	// integer is compared against the trade's rating.
	Quality string
	// Label matches if the value appears in tags, entry reasons or mental
	// state. Union semantics across the three fields.
	Label string
	// LiveOnly excludes backtest-provenance trades.
	LiveOnly bool
}

// Window kinds.
type WindowKind int

const (
	// Lifetime applies no date filtering.
	Lifetime WindowKind = iota
	// Relative keeps trades entered within the last Days days, measured
	// from the wall clock at filter time.
	Relative
	// Absolute keeps trades entered between Start's midnight and the last
	// nanosecond of End's day, both inclusive.
	Absolute
)

// DateWindow restricts the pool by entry date.
type DateWindow struct {
	Kind  WindowKind
	Days  int
	Start time.Time
	End   time.Time
}

// Filter selects the working subset of the pool. The output order is the
// pool order; callers sort with trade.SortChronological before deriving
// closed-trade sequences.
func Filter(pool []trade.Trade, f Facets, w DateWindow) []trade.Trade {
	return filterAt(time.Now(), pool, f, w)
}

func filterAt(now time.Time, pool []trade.Trade, f Facets, w DateWindow) []trade.Trade {
	out := make([]trade.Trade, 0, len(pool))
	for _, t := range pool {
		if matchFacets(t, f) && matchWindow(now, t, w) {
			out = append(out, t)
		}
	}
	return out
}

func matchFacets(t trade.Trade, f Facets) bool {
	if f.LiveOnly && t.TradeType == trade.TypeBacktest {
		return false
	}
	if set(f.Account) && t.Account != f.Account {
		return false
	}
	if set(f.Symbol) && t.Symbol != f.Symbol {
		return false
	}
	if set(f.Exchange) && t.Exchange != f.Exchange {
		return false
	}
	if set(f.Strategy) && t.Strategy != f.Strategy {
		return false
	}
	if set(f.Setup) && !contains(t.Setups, f.Setup) {
		return false
	}
	if set(f.Side) && string(t.Side) != strings.ToUpper(f.Side) {
		return false
	}
	if set(f.Quality) && t.ExitQuality != parseQuality(f.Quality) {
		return false
	}
	if set(f.Label) && !contains(t.Labels(), f.Label) {
		return false
	}
	return true
}

func matchWindow(now time.Time, t trade.Trade, w DateWindow) bool {
	switch w.Kind {
	case Relative:
		if t.EntryDate.IsZero() {
			return false
		}
		cutoff := now.AddDate(0, 0, -w.Days)
		return !t.EntryDate.Before(cutoff)
	case Absolute:
		if t.EntryDate.IsZero() {
			return false
		}
		start := startOfDay(w.Start)
		end := endOfDay(w.End)
		return !t.EntryDate.Before(start) && !t.EntryDate.After(end)
	default:
		return true
	}
}

// parseQuality extracts the rating from a bucket label like "3 Stars".
// Anything unparseable maps to -1, which matches no trade.
func parseQuality(label string) int {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) == 0 {
		return -1
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return -1
	}
	return n
}

func set(v string) bool {
	return v != "" && v != "All"
}

func contains(vals []string, want string) bool {
	for _, v := range vals {
		if v == want {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
