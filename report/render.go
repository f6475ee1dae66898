package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rustyeddy/journal/stats"
)

// Print writes a human-readable rendering of the report.
func Print(w io.Writer, r Report) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trade Journal Report")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Period:        %s\n", r.Period)
	fmt.Fprintf(w, "Trades:        %d\n", r.TotalTrades)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Net P/L:       %.2f\n", r.NetPnl)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", r.WinRate)
	fmt.Fprintf(w, "Expectancy:    %.2f\n", r.Expectancy)
	if r.ProfitFactor >= stats.ProfitFactorCap {
		fmt.Fprintf(w, "Profit Factor: %d+ (no losses)\n", stats.ProfitFactorCap)
	} else {
		fmt.Fprintf(w, "Profit Factor: %.2f\n", r.ProfitFactor)
	}

	s := r.Stats
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Wins:          %d\n", s.WinningTrades)
	fmt.Fprintf(w, "Losses:        %d\n", s.LosingTrades)
	fmt.Fprintf(w, "Avg Win:       %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", s.AvgLoss)
	fmt.Fprintf(w, "Best Trade:    %.2f\n", s.HighestWin)
	fmt.Fprintf(w, "Worst Trade:   %.2f\n", s.HighestLoss)
	fmt.Fprintf(w, "Sharpe:        %.2f\n", s.SharpeRatio)
	fmt.Fprintf(w, "Sortino:       %.2f\n", s.SortinoRatio)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Streaks & Drawdown")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Max Win Streak:  %d\n", s.MaxWinStreak)
	fmt.Fprintf(w, "Max Loss Streak: %d\n", s.MaxLossStreak)
	fmt.Fprintf(w, "Current Streak:  %d (%s)\n", s.CurrentStreak, s.CurrentStreakType)
	fmt.Fprintf(w, "Max Drawdown:    %.2f\n", s.MaxDrawdown)
	if s.MaxRecoveryTime > 0 {
		fmt.Fprintf(w, "Max Recovery:    %s\n", formatDuration(s.MaxRecoveryTime))
	}
	if s.RecoveryFactor > 0 {
		fmt.Fprintf(w, "Recovery Factor: %.2f\n", s.RecoveryFactor)
	}

	if r.Fees.Total > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Estimated Fees")
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintf(w, "Total:         %.2f\n", r.Fees.Total)
		exchanges := make([]string, 0, len(r.Fees.ByExchange))
		for ex := range r.Fees.ByExchange {
			exchanges = append(exchanges, ex)
		}
		sort.Strings(exchanges)
		for _, ex := range exchanges {
			fmt.Fprintf(w, "  %-12s %.2f\n", ex+":", r.Fees.ByExchange[ex])
		}
	}

	for _, name := range []string{"symbol", "strategy", "side", "exchange"} {
		groups := r.Breakdowns[name]
		if len(groups) == 0 {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "By %s\n", name)
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, g := range groups {
			fmt.Fprintf(w, "%-16s %8.2f  %3d trades  %.1f%% wins\n",
				g.Key, g.Pnl, g.Count, g.WinRate())
		}
	}

	fmt.Fprintln(w)
}

func formatDuration(d time.Duration) string {
	if d >= 24*time.Hour {
		days := d / (24 * time.Hour)
		rest := d % (24 * time.Hour)
		return fmt.Sprintf("%dd%s", days, rest.Round(time.Minute))
	}
	return d.Round(time.Minute).String()
}
