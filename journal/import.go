package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/journal/pkg/id"
	"github.com/rustyeddy/journal/trade"
)

// pnlEpsilon is the threshold below which an imported P/L is treated as
// zero when inferring whether a trade is closed.
const pnlEpsilon = 1e-6

// skipStatus marks rows that never became trades.
var skipStatus = regexp.MustCompile(`(?i)cancelled|rejected|failed`)

// ImportResult is what a whole-file normalization produces. A file missing
// a required column yields zero trades and one error string per missing
// column; a dirty file yields every recoverable row and no errors.
type ImportResult struct {
	Trades []trade.Trade
	Errors []string
}

// Normalizer converts raw tabular rows with arbitrary headers into
// canonical trade records.
type Normalizer struct {
	log *zap.Logger

	// now is the clock used for unparseable entry dates. Overridable in tests.
	now func() time.Time
}

// NewNormalizer returns a Normalizer logging through log. A nil logger
// disables logging.
func NewNormalizer(log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{log: log, now: time.Now}
}

// ImportCSV reads an entire CSV or TSV stream, header row first. The
// delimiter is sniffed from the header line.
func (n *Normalizer) ImportCSV(r io.Reader) (ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read import: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(string(data)))
	cr.Comma = sniffDelimiter(string(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse import: %w", err)
	}
	if len(records) == 0 {
		return ImportResult{}, fmt.Errorf("import has no header row")
	}

	return n.Normalize(records[0], records[1:]), nil
}

// Normalize converts rows under the given header into trades. Rows are
// independent: one bad row is logged and skipped, never aborting the batch.
// Only unresolvable required columns fail the whole file.
func (n *Normalizer) Normalize(header []string, rows [][]string) ImportResult {
	if len(header) == 0 {
		// Programmer error, not a data problem.
		panic("journal: Normalize called without a header row")
	}

	cols, missing := resolveColumns(header)
	if len(missing) > 0 {
		return ImportResult{Errors: missing}
	}

	res := ImportResult{Trades: make([]trade.Trade, 0, len(rows))}
	for i, row := range rows {
		t, ok := n.normalizeRow(cols, row, i)
		if ok {
			res.Trades = append(res.Trades, t)
		}
	}
	return res
}

// normalizeRow builds one trade. Any panic while coercing the row is
// recovered, logged and reported as a skip.
func (n *Normalizer) normalizeRow(cols map[string]int, row []string, idx int) (t trade.Trade, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Warn("skipping unreadable row",
				zap.Int("row", idx),
				zap.Any("panic", r))
			ok = false
		}
	}()

	cell := func(field string) string {
		i, present := cols[field]
		if !present || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	statusText := strings.ToLower(cell(colStatus))
	if skipStatus.MatchString(statusText) {
		return trade.Trade{}, false
	}

	symbol := trade.NormalizeSymbol(cell(colSymbol))
	entryPrice := parseNumber(cell(colEntryPrice))
	if symbol == "UNKNOWN" || entryPrice <= 0 {
		// Unusable row; dropped silently rather than surfaced.
		return trade.Trade{}, false
	}

	entryDate, entryOK := parseDate(cell(colEntryDate))
	if !entryOK {
		// Deliberately lossy fallback: an unreadable entry date becomes
		// "now" instead of crashing the row.
		entryDate = n.now()
	}
	exitDate, exitOK := parseDate(cell(colExitDate))

	side := inferSide(cell(colSide))
	qty := math.Abs(parseNumber(cell(colQuantity)))
	exitPrice := parseNumber(cell(colExitPrice))
	pnl := parseNumber(cell(colPnl))

	status := trade.Open
	closed := statusText == "closed" || exitOK || math.Abs(pnl) > pnlEpsilon
	if closed {
		status = trade.Closed
		if pnl == 0 && exitPrice > 0 {
			pnl = trade.DerivePnl(side, entryPrice, exitPrice, qty)
		}
		if !exitOK || exitDate.Before(entryDate) {
			// Never fabricate an exit earlier than the entry.
			exitDate = entryDate
		}
	} else {
		exitDate = time.Time{}
	}

	leverage := parseNumber(cell(colLeverage))
	if leverage < 1 {
		leverage = 1
	}

	capital := parseNumber(cell(colCapital))
	if capital <= 0 {
		capital = entryPrice * qty / leverage
	}

	pnlPct := parseNumber(cell(colPnlPercent))
	if pnlPct == 0 && entryPrice*qty > 0 {
		// Known approximation: not direction-adjusted for shorts.
		pnlPct = pnl / (entryPrice * qty) * 100
	}

	t = trade.Trade{
		ID:            id.New(),
		Account:       cell(colAccount),
		Symbol:        symbol,
		Side:          side,
		Exchange:      orDefault(cell(colExchange), trade.DefaultExchange),
		EntryPrice:    entryPrice,
		ExitPrice:     exitPrice,
		Quantity:      qty,
		Leverage:      leverage,
		Capital:       capital,
		Status:        status,
		Pnl:           pnl,
		PnlPercentage: pnlPct,
		EntryDate:     entryDate,
		ExitDate:      exitDate,
		Strategy:      cell(colStrategy),
		Setups:        splitList(cell(colSetups)),
		Tags:          splitList(cell(colTags)),
		EntryReasons:  splitList(cell(colReasons)),
		MentalState:   splitList(cell(colMentalState)),
		ExitQuality:   trade.ClampQuality(int(parseNumber(cell(colQuality)))),
		TradeType:     inferTradeType(cell(colTradeType)),
	}
	return t, true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// parseDate strips a trailing " UTC", tries the known layouts, and on
// failure retries with dots swapped for dashes (European "02.01.2006"
// exports). It reports success rather than erroring; the caller decides
// the fallback.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), " UTC"))
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := tryLayouts(s); ok {
		return t, true
	}
	return tryLayouts(strings.ReplaceAll(s, ".", "-"))
}

func tryLayouts(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumber strips everything except digits, dot and minus before
// parsing. Non-numeric or empty input yields 0, never an error.
func parseNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func inferSide(s string) trade.Side {
	l := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(l, "short") || strings.Contains(l, "sell") || l == "s" {
		return trade.Short
	}
	return trade.Long
}

func inferTradeType(s string) trade.Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backtest":
		return trade.TypeBacktest
	case "journal":
		return trade.TypeJournal
	default:
		return trade.TypeImported
	}
}

// splitList splits a raw cell on '|', ';' or ',', trimming each piece and
// dropping empties.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ';' || r == ','
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// sniffDelimiter picks tab when the header line carries tabs, else comma.
func sniffDelimiter(data string) rune {
	line := data
	if i := strings.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if strings.ContainsRune(line, '\t') {
		return '\t'
	}
	return ','
}
