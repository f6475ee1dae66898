package journal

import "strings"

// Canonical import fields. The synonym table below is the de facto input
// format contract for broker and exchange exports.
const (
	colSymbol      = "symbol"
	colSide        = "side"
	colEntryPrice  = "entryPrice"
	colExitPrice   = "exitPrice"
	colQuantity    = "quantity"
	colLeverage    = "leverage"
	colCapital     = "capital"
	colPnl         = "pnl"
	colPnlPercent  = "pnlPercentage"
	colEntryDate   = "entryDate"
	colExitDate    = "exitDate"
	colStatus      = "status"
	colExchange    = "exchange"
	colStrategy    = "strategy"
	colSetups      = "setups"
	colTags        = "tags"
	colReasons     = "entryReasons"
	colMentalState = "mentalState"
	colQuality     = "exitQuality"
	colAccount     = "account"
	colTradeType   = "tradeType"
)

type columnSpec struct {
	field    string
	synonyms []string
	required bool
}

// columnTable is ordered: within a field, synonyms are scanned in priority
// order and the first header that equals or contains one wins. Keeping the
// table in one place makes the resolution order auditable; "close" style
// ambiguity (close price vs closed status) is settled by synonym priority,
// not scattered string literals.
var columnTable = []columnSpec{
	{colSymbol, []string{"symbol", "pair", "ticker", "contract", "instrument", "market", "item"}, true},
	{colEntryDate, []string{"entry_date", "entry date", "entry time", "open_time", "open time", "opened", "date", "time"}, true},
	{colEntryPrice, []string{"entry_price", "entry price", "entryprice", "open price", "avg entry", "buy price", "price"}, true},
	{colExitDate, []string{"exit_date", "exit date", "exit time", "close_time", "close time", "closed at"}, false},
	{colExitPrice, []string{"exit_price", "exit price", "exitprice", "close price", "avg exit", "sell price"}, false},
	{colSide, []string{"side", "direction", "position side", "buy/sell", "type"}, false},
	{colQuantity, []string{"quantity", "qty", "size", "amount", "units", "volume"}, false},
	{colLeverage, []string{"leverage", "lever"}, false},
	{colCapital, []string{"capital", "cost", "margin"}, false},
	{colPnl, []string{"realized p&l", "realized pnl", "realised pnl", "pnl", "p&l", "profit", "pl"}, false},
	{colPnlPercent, []string{"pnl_percentage", "pnl %", "pnl%", "roi", "return %", "return%", "pnl percentage"}, false},
	{colStatus, []string{"status", "state"}, false},
	{colExchange, []string{"exchange", "broker", "venue"}, false},
	{colStrategy, []string{"strategy", "playbook", "system"}, false},
	{colSetups, []string{"setups", "setup"}, false},
	{colTags, []string{"tags", "labels", "tag"}, false},
	{colReasons, []string{"entry_reasons", "entry reasons", "reasons", "reason"}, false},
	{colMentalState, []string{"mental_state", "mental state", "mood", "emotion"}, false},
	{colQuality, []string{"exit_quality", "exit quality", "rating", "stars"}, false},
	{colAccount, []string{"account"}, false},
	{colTradeType, []string{"trade_type", "trade type", "provenance"}, false},
}

// resolveColumns maps canonical fields to header indexes. Headers are
// lower-cased and trimmed before matching; for each synonym an exact match
// anywhere in the row beats a contains match, so reordering columns never
// changes the mapping.
func resolveColumns(header []string) (map[string]int, []string) {
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cols := make(map[string]int, len(columnTable))
	var missing []string

	for _, spec := range columnTable {
		idx := resolveField(lowered, spec.synonyms)
		if idx >= 0 {
			cols[spec.field] = idx
		} else if spec.required {
			missing = append(missing, "missing required column: "+spec.field+
				" (accepted headers: "+strings.Join(spec.synonyms, ", ")+")")
		}
	}
	return cols, missing
}

func resolveField(headers []string, synonyms []string) int {
	for _, syn := range synonyms {
		for i, h := range headers {
			if h == syn {
				return i
			}
		}
		for i, h := range headers {
			if strings.Contains(h, syn) {
				return i
			}
		}
	}
	return -1
}
