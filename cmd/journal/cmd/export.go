package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export the journal to CSV",
	Long: `Export writes every trade in the journal to a CSV file, header first,
using the same flat-field shape the importer accepts. An exported file
re-imports without losing status or P/L information.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportDBPath string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDBPath, "db", "d", "", "path to journal DB (overrides config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbPath := cfg.Journal.DBPath
	if exportDBPath != "" {
		dbPath = exportDBPath
	}

	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	if err := journal.ExportCSVFile(args[0], trades); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("exported %d trade(s) to %s\n", len(trades), args[0])
	return nil
}
