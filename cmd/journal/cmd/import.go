package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
	"go.uber.org/zap"

	"github.com/rustyeddy/journal/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a CSV/TSV trade export into the journal",
	Long: `Import normalizes a broker or exchange export into canonical trade
records and stores them in the journal database.

Accepted inputs:
  - plain .csv or .tsv files
  - .xz compressed exports (decompressed on the fly)
  - .zip bundles (every .csv/.tsv inside is imported)

Column headers are matched against a synonym table, so exports from
different venues import without manual editing. Rows that cannot produce a
usable trade are skipped; only a file missing a required column fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importDBPath, "db", "d", "", "path to journal DB (overrides config)")
}

var importDBPath string

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbPath := cfg.Journal.DBPath
	if importDBPath != "" {
		dbPath = importDBPath
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	paths, cleanup, err := expandInput(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	norm := journal.NewNormalizer(log)
	total := 0

	for _, path := range paths {
		res, err := importFile(norm, path)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		if len(res.Errors) > 0 {
			for _, e := range res.Errors {
				fmt.Fprintln(os.Stderr, e)
			}
			return fmt.Errorf("import %s: unusable file", path)
		}
		for _, t := range res.Trades {
			if err := j.RecordTrade(t); err != nil {
				return fmt.Errorf("record trade: %w", err)
			}
		}
		total += len(res.Trades)
	}

	fmt.Printf("imported %d trade(s) into %s\n", total, dbPath)
	return nil
}

func importFile(norm *journal.Normalizer, path string) (journal.ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return journal.ImportResult{}, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xr, err := xz.NewReader(file)
		if err != nil {
			return journal.ImportResult{}, fmt.Errorf("xz: %w", err)
		}
		r = xr
	}

	return norm.ImportCSV(r)
}

// expandInput resolves a path into the list of files to import. Zip
// bundles extract into a temp dir removed by the returned cleanup.
func expandInput(path string) ([]string, func(), error) {
	noop := func() {}

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return []string{path}, noop, nil
	}

	dir, err := os.MkdirTemp("", "journal-import-*")
	if err != nil {
		return nil, noop, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	if err := unzip.Extract(path, dir); err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("unzip: %w", err)
	}

	var files []string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(p))
		if !d.IsDir() && (ext == ".csv" || ext == ".tsv") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		cleanup()
		return nil, noop, err
	}
	if len(files) == 0 {
		cleanup()
		return nil, noop, fmt.Errorf("no .csv or .tsv files in %s", path)
	}
	return files, cleanup, nil
}
