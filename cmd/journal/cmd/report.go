package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/journal"
	"github.com/rustyeddy/journal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute and print the performance report",
	Long: `Report filters the journal by the given facets and date window, then
recomputes the full performance report: win rate, profit factor,
expectancy, Sharpe/Sortino, streaks, drawdown, fee estimates and the
deep-dive breakdowns.

Examples:
  journal report
  journal report --days 30 --symbol BTCUSDT
  journal report --from 2024-01-01 --to 2024-03-31 --json`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var (
	reportDBPath string
	reportJSON   bool
	reportDays   int
	reportFrom   string
	reportTo     string

	reportFacets journal.Facets
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportDBPath, "db", "d", "", "path to journal DB (overrides config)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit the JSON payload instead of text")

	reportCmd.Flags().IntVar(&reportDays, "days", 0, "relative window: keep trades entered in the last N days")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "absolute window start (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "absolute window end (YYYY-MM-DD)")

	reportCmd.Flags().StringVar(&reportFacets.Account, "account", "", "filter by account id")
	reportCmd.Flags().StringVar(&reportFacets.Symbol, "symbol", "", "filter by symbol")
	reportCmd.Flags().StringVar(&reportFacets.Exchange, "exchange", "", "filter by exchange")
	reportCmd.Flags().StringVar(&reportFacets.Strategy, "strategy", "", "filter by strategy")
	reportCmd.Flags().StringVar(&reportFacets.Setup, "setup", "", "filter by setup")
	reportCmd.Flags().StringVar(&reportFacets.Side, "side", "", "filter by side (LONG or SHORT)")
	reportCmd.Flags().StringVar(&reportFacets.Quality, "quality", "", `filter by exit-quality bucket, e.g. "3 Stars"`)
	reportCmd.Flags().StringVar(&reportFacets.Label, "label", "", "filter by tag/reason/mental-state label")
	reportCmd.Flags().BoolVar(&reportFacets.LiveOnly, "live-only", false, "exclude backtest trades")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbPath := cfg.Journal.DBPath
	if reportDBPath != "" {
		dbPath = reportDBPath
	}

	window, err := parseWindow()
	if err != nil {
		return err
	}

	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	pool, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	r := report.Build(pool, reportFacets, window, cfg.Fees)

	if reportJSON {
		data, err := r.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	report.Print(os.Stdout, r)
	return nil
}

func parseWindow() (journal.DateWindow, error) {
	switch {
	case reportFrom != "" || reportTo != "":
		if reportFrom == "" || reportTo == "" {
			return journal.DateWindow{}, fmt.Errorf("--from and --to must be given together")
		}
		start, err := time.ParseInLocation("2006-01-02", reportFrom, time.Local)
		if err != nil {
			return journal.DateWindow{}, fmt.Errorf("bad --from: %w", err)
		}
		end, err := time.ParseInLocation("2006-01-02", reportTo, time.Local)
		if err != nil {
			return journal.DateWindow{}, fmt.Errorf("bad --to: %w", err)
		}
		return journal.DateWindow{Kind: journal.Absolute, Start: start, End: end}, nil
	case reportDays > 0:
		return journal.DateWindow{Kind: journal.Relative, Days: reportDays}, nil
	default:
		return journal.DateWindow{Kind: journal.Lifetime}, nil
	}
}
