// Package storage persists the demo transaction dataset in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhartleigh/paydeck/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id             TEXT PRIMARY KEY,
	reference      TEXT NOT NULL UNIQUE,
	notes          TEXT,
	status         TEXT NOT NULL,
	customer       TEXT NOT NULL,
	customer_email TEXT,
	method_type    TEXT NOT NULL,
	method_last4   TEXT,
	amount         REAL NOT NULL,
	fee            REAL NOT NULL,
	net            REAL NOT NULL,
	charged_on     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_customer ON transactions(customer);
CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status);
`

// SQLiteStore persists transactions for the demo dataset.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if necessary) the database at dbPath and
// ensures the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveTransactions upserts the given transactions in a single database
// transaction.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO transactions (
			id, reference, notes, status, customer, customer_email,
			method_type, method_last4, amount, fee, net, charged_on
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range transactions {
		if t.ID == "" {
			return fmt.Errorf("transaction with empty id")
		}
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Reference, t.Notes, string(t.Status), t.Customer, t.CustomerEmail,
			t.Method.Type, t.Method.Last4, t.Amount, t.Fee, t.Net, t.ChargedOn,
		); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// ListTransactions returns every stored transaction in insertion order.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reference, notes, status, customer, customer_email,
		       method_type, method_last4, amount, fee, net, charged_on
		FROM transactions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var notes, email, last4 sql.NullString
		var status string
		if err := rows.Scan(
			&t.ID, &t.Reference, &notes, &status, &t.Customer, &email,
			&t.Method.Type, &last4, &t.Amount, &t.Fee, &t.Net, &t.ChargedOn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		parsed, err := model.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("stored transaction %s: %w", t.ID, err)
		}
		t.Status = parsed
		t.Notes = notes.String
		t.CustomerEmail = email.String
		t.Method.Last4 = last4.String

		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// Count returns the number of stored transactions.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}
