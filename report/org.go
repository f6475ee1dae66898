package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/journal/trade"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting
// into a journal file. It purposely includes narrative placeholders
// (Thesis/Execution/Review) while keeping all structured facts in a
// PROPERTIES drawer for easy search.
func FormatTradeOrg(t trade.Trade) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Symbol, t.Side, shortID(t.ID))
	entry := t.EntryDate.UTC().Format(time.RFC3339)
	exit := ""
	if !t.ExitDate.IsZero() {
		exit = t.ExitDate.UTC().Format(time.RFC3339)
	}

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", t.Side))
	b.WriteString(fmt.Sprintf(":EXCHANGE: %s\n", t.Exchange))
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", t.Status))
	b.WriteString(fmt.Sprintf(":QUANTITY: %g\n", t.Quantity))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", t.ExitPrice))
	b.WriteString(fmt.Sprintf(":ENTRY_DATE: %s\n", entry))
	if exit != "" {
		b.WriteString(fmt.Sprintf(":EXIT_DATE: %s\n", exit))
	}
	b.WriteString(fmt.Sprintf(":PNL: %.2f\n", t.Pnl))
	b.WriteString(fmt.Sprintf(":PNL_PCT: %.2f\n", t.PnlPercentage))
	if t.Strategy != "" {
		b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", t.Strategy))
	}
	if len(t.Setups) > 0 {
		b.WriteString(fmt.Sprintf(":SETUPS: %s\n", strings.Join(t.Setups, "|")))
	}
	if labels := t.Labels(); len(labels) > 0 {
		b.WriteString(fmt.Sprintf(":LABELS: %s\n", strings.Join(labels, "|")))
	}
	b.WriteString(fmt.Sprintf(":EXIT_QUALITY: %d\n", t.ExitQuality))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []trade.Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
