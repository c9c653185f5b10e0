// Package storage is the SQLite backend for the ledger. Dates are stored
// as RFC 3339 text so range queries can compare them lexically.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"duit/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) AddTransaction(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, date, type, category, amount, notes) VALUES (?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Date.Format(time.RFC3339Nano), string(tx.Type), tx.Category, tx.Amount, tx.Notes)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", tx.ID,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount)

	return nil
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, type, category, amount, notes FROM transactions ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			tx      core.Transaction
			rawDate string
			rawType string
		)
		if err := rows.Scan(&tx.ID, &rawDate, &rawType, &tx.Category, &tx.Amount, &tx.Notes); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Date, err = time.Parse(time.RFC3339Nano, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", rawDate, err)
		}
		tx.Type = core.TransactionType(rawType)
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) AddGoal(ctx context.Context, g core.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin goal insert: %w", err)
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx,
		`INSERT INTO goals (id, title, description, target_amount, is_completed, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, g.Description, g.TargetAmount, boolToInt(g.IsCompleted), g.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}

	if err := insertDeposits(ctx, dbTx, g.ID, g.Deposits); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit goal insert: %w", err)
	}

	slog.InfoContext(ctx, "Goal saved to SQLite", "id", g.ID, "title", g.Title, "target", g.TargetAmount)
	return nil
}

func (r *SQLiteRepository) GetGoal(ctx context.Context, id string) (core.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, target_amount, is_completed, created_at FROM goals WHERE id = ?`, id)

	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Goal{}, core.ErrNotFound
	}
	if err != nil {
		return core.Goal{}, fmt.Errorf("get goal: %w", err)
	}

	if err := r.loadDeposits(ctx, &g); err != nil {
		return core.Goal{}, err
	}
	return g, nil
}

// UpdateGoal replaces the goal row and its deposit list wholesale. The
// deposit list on the goal is the source of truth.
func (r *SQLiteRepository) UpdateGoal(ctx context.Context, g core.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin goal update: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		`UPDATE goals SET title = ?, description = ?, target_amount = ?, is_completed = ? WHERE id = ?`,
		g.Title, g.Description, g.TargetAmount, boolToInt(g.IsCompleted), g.ID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM deposits WHERE goal_id = ?`, g.ID); err != nil {
		return fmt.Errorf("clear deposits: %w", err)
	}
	if err := insertDeposits(ctx, dbTx, g.ID, g.Deposits); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit goal update: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, target_amount, is_completed, created_at FROM goals ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.loadDeposits(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteRepository) loadDeposits(ctx context.Context, g *core.Goal) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount, date, note FROM deposits WHERE goal_id = ? ORDER BY date, id`, g.ID)
	if err != nil {
		return fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	g.Deposits = nil
	g.CurrentAmount = 0
	for rows.Next() {
		var (
			d       core.Deposit
			rawDate string
		)
		if err := rows.Scan(&d.ID, &d.Amount, &rawDate, &d.Note); err != nil {
			return fmt.Errorf("scan deposit: %w", err)
		}
		d.Date, err = time.Parse(time.RFC3339Nano, rawDate)
		if err != nil {
			return fmt.Errorf("parse deposit date %q: %w", rawDate, err)
		}
		g.Deposits = append(g.Deposits, d)
		g.CurrentAmount += d.Amount
	}
	return rows.Err()
}

func insertDeposits(ctx context.Context, dbTx *sql.Tx, goalID string, deposits []core.Deposit) error {
	for _, d := range deposits {
		_, err := dbTx.ExecContext(ctx,
			`INSERT INTO deposits (id, goal_id, amount, date, note) VALUES (?, ?, ?, ?, ?)`,
			d.ID, goalID, d.Amount, d.Date.Format(time.RFC3339Nano), d.Note)
		if err != nil {
			return fmt.Errorf("insert deposit: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (core.Goal, error) {
	var (
		g            core.Goal
		completed    int
		rawCreatedAt string
	)
	if err := row.Scan(&g.ID, &g.Title, &g.Description, &g.TargetAmount, &completed, &rawCreatedAt); err != nil {
		return core.Goal{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rawCreatedAt)
	if err != nil {
		return core.Goal{}, fmt.Errorf("parse goal created_at %q: %w", rawCreatedAt, err)
	}
	g.CreatedAt = createdAt
	g.IsCompleted = completed != 0
	return g, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
