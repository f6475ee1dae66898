package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/journal/trade"
)

// SQLite is the reference persistence collaborator. It supplies the trade
// pool the analytics core filters and never participates in computation.
type SQLite struct {
	db *sql.DB
}

var _ Journal = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

const tradeColumns = `id, account, symbol, side, exchange, status,
	entry_price, exit_price, quantity, leverage, capital,
	pnl, pnl_percentage, entry_date, exit_date,
	strategy, setups, tags, entry_reasons, mental_state,
	exit_quality, trade_type`

func (j *SQLite) RecordTrade(t trade.Trade) error {
	var exit interface{}
	if !t.ExitDate.IsZero() {
		exit = t.ExitDate
	}
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Account, t.Symbol, string(t.Side), t.Exchange, string(t.Status),
		t.EntryPrice, t.ExitPrice, t.Quantity, t.Leverage, t.Capital,
		t.Pnl, t.PnlPercentage, t.EntryDate, exit,
		t.Strategy, strings.Join(t.Setups, "|"), strings.Join(t.Tags, "|"),
		strings.Join(t.EntryReasons, "|"), strings.Join(t.MentalState, "|"),
		t.ExitQuality, string(t.TradeType),
	)
	return err
}

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(id string) (trade.Trade, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return trade.Trade{}, fmt.Errorf("trade %q not found", id)
		}
		return trade.Trade{}, err
	}
	return t, nil
}

// ListTrades returns the whole pool, oldest entry first.
func (j *SQLite) ListTrades() ([]trade.Trade, error) {
	rows, err := j.db.Query(`SELECT ` + tradeColumns + ` FROM trades ORDER BY entry_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTrades(rows)
}

// ListTradesClosedBetween returns closed trades whose exit_date is within
// [start, end), ascending.
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]trade.Trade, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE status = ? AND exit_date >= ? AND exit_date < ?
		ORDER BY exit_date ASC`, string(trade.Closed), start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTrades(rows)
}

func (j *SQLite) DeleteTrade(id string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrade(r rowScanner) (trade.Trade, error) {
	var (
		t                             trade.Trade
		side, status, tradeType       string
		setups, tags, reasons, mental string
		exit                          sql.NullTime
	)

	err := r.Scan(
		&t.ID, &t.Account, &t.Symbol, &side, &t.Exchange, &status,
		&t.EntryPrice, &t.ExitPrice, &t.Quantity, &t.Leverage, &t.Capital,
		&t.Pnl, &t.PnlPercentage, &t.EntryDate, &exit,
		&t.Strategy, &setups, &tags, &reasons, &mental,
		&t.ExitQuality, &tradeType,
	)
	if err != nil {
		return trade.Trade{}, err
	}

	t.Side = trade.Side(side)
	t.Status = trade.Status(status)
	t.TradeType = trade.Type(tradeType)
	if exit.Valid {
		t.ExitDate = exit.Time
	}
	t.Setups = splitList(setups)
	t.Tags = splitList(tags)
	t.EntryReasons = splitList(reasons)
	t.MentalState = splitList(mental)
	return t, nil
}

func collectTrades(rows *sql.Rows) ([]trade.Trade, error) {
	var out []trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
