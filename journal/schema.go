package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	account TEXT NOT NULL DEFAULT '',
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	exchange TEXT NOT NULL,
	status TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL DEFAULT 0,
	quantity REAL NOT NULL DEFAULT 0,
	leverage REAL NOT NULL DEFAULT 1,
	capital REAL NOT NULL DEFAULT 0,
	pnl REAL NOT NULL DEFAULT 0,
	pnl_percentage REAL NOT NULL DEFAULT 0,
	entry_date DATETIME NOT NULL,
	exit_date DATETIME,
	strategy TEXT NOT NULL DEFAULT '',
	setups TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	entry_reasons TEXT NOT NULL DEFAULT '',
	mental_state TEXT NOT NULL DEFAULT '',
	exit_quality INTEGER NOT NULL DEFAULT 0,
	trade_type TEXT NOT NULL DEFAULT 'journal'
);

CREATE INDEX IF NOT EXISTS idx_trades_entry_date ON trades(entry_date);
CREATE INDEX IF NOT EXISTS idx_trades_exit_date ON trades(exit_date);
CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
`
