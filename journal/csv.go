package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/journal/trade"
)

// exportHeader is the flat-field shape shared by import and export. Every
// column name exact-matches a synonym in columnTable, so an exported pool
// re-imports without loss.
var exportHeader = []string{
	"id", "account", "symbol", "side", "exchange", "status",
	"entry_price", "exit_price", "quantity", "leverage", "capital",
	"pnl", "pnl_percentage", "entry_date", "exit_date",
	"strategy", "setups", "tags", "entry_reasons", "mental_state",
	"exit_quality", "trade_type",
}

// ExportCSV writes the pool header-first, one row per trade.
func ExportCSV(w io.Writer, trades []trade.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range trades {
		exit := ""
		if !t.ExitDate.IsZero() {
			exit = t.ExitDate.UTC().Format(time.RFC3339)
		}
		row := []string{
			t.ID,
			t.Account,
			t.Symbol,
			string(t.Side),
			t.Exchange,
			string(t.Status),
			f(t.EntryPrice),
			f(t.ExitPrice),
			f(t.Quantity),
			f(t.Leverage),
			f(t.Capital),
			f(t.Pnl),
			f(t.PnlPercentage),
			t.EntryDate.UTC().Format(time.RFC3339),
			exit,
			t.Strategy,
			strings.Join(t.Setups, "|"),
			strings.Join(t.Tags, "|"),
			strings.Join(t.EntryReasons, "|"),
			strings.Join(t.MentalState, "|"),
			strconv.Itoa(t.ExitQuality),
			string(t.TradeType),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write trade %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes the pool to a file.
func ExportCSVFile(path string, trades []trade.Trade) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer file.Close()

	if err := ExportCSV(file, trades); err != nil {
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
