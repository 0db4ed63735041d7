package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"spendbook/internal/clock"
	"spendbook/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists the ledger in an embedded sqlite database. It
// keeps the same full-overwrite semantics as the JSON file: every save
// replaces the transactions table inside one database transaction.
type SQLiteRepository struct {
	db  *sql.DB
	clk clock.Clock
}

func NewSQLiteRepository(dbPath string, clk clock.Clock) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, clk: clk}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load reads all transactions in their stored insertion order.
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount, description, category, date, timestamp
		 FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	now := r.clk.Now()
	var transactions []core.Transaction
	for rows.Next() {
		var id, amountText, description, category, date, timestamp string
		if err := rows.Scan(&id, &amountText, &description, &category, &date, &timestamp); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		amount, err := decimal.NewFromString(amountText)
		if err != nil {
			return nil, fmt.Errorf("record %s: bad amount %q: %w", id, amountText, err)
		}
		transactions = append(transactions, core.Rehydrate(now, id, amount, description, category, date, timestamp))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

// Save replaces the whole ledger atomically.
func (r *SQLiteRepository) Save(ctx context.Context, transactions []core.Transaction, lastUpdated time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	for i, t := range transactions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (position, id, amount, description, category, date, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i+1, t.ID, t.Amount.String(), t.Description, string(t.Category), t.Date, t.Timestamp)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('last_updated', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastUpdated.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record last_updated: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
