package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/journal"
	"github.com/rustyeddy/journal/report"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show journal trades as Org-mode blocks",
	Long: `Show renders trades as Org-mode blocks suitable for pasting into a
journal file.

Subcommands:
  trade  - Show one trade by ID
  today  - Show trades closed today
  day    - Show trades closed on a specific day

Examples:
  journal show trade <trade-id>
  journal show today
  journal show day 2024-01-15`,
}

var showTradeCmd = &cobra.Command{
	Use:   "trade <trade-id>",
	Short: "Show one trade by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowTrade,
}

var showTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runShowToday,
}

var showDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "Show trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowDay,
}

var showDBPath string

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showTradeCmd)
	showCmd.AddCommand(showTodayCmd)
	showCmd.AddCommand(showDayCmd)

	showCmd.PersistentFlags().StringVarP(&showDBPath, "db", "d", "", "path to journal DB (overrides config)")
}

func openShowDB() (*journal.SQLite, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dbPath := cfg.Journal.DBPath
	if showDBPath != "" {
		dbPath = showDBPath
	}
	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runShowTrade(cmd *cobra.Command, args []string) error {
	j, err := openShowDB()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Println(report.FormatTradeOrg(rec))
	return nil
}

func runShowToday(cmd *cobra.Command, args []string) error {
	return showDayTrades(time.Now().Format("2006-01-02"))
}

func runShowDay(cmd *cobra.Command, args []string) error {
	return showDayTrades(args[0])
}

func showDayTrades(day string) error {
	j, err := openShowDB()
	if err != nil {
		return err
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListTradesClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Println(report.FormatTradesOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
