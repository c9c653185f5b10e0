package ledger

import (
	"context"

	"duit/internal/core"
)

// Ports for outbound persistence adapters.
type (
	TransactionStore interface {
		// AddTransaction appends a validated transaction.
		AddTransaction(ctx context.Context, tx core.Transaction) error
		// DeleteTransaction removes exactly one transaction by id, or
		// returns core.ErrNotFound.
		DeleteTransaction(ctx context.Context, id string) error
		// ListTransactions returns all transactions in insertion order.
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	GoalStore interface {
		// AddGoal appends a validated goal.
		AddGoal(ctx context.Context, g core.Goal) error
		// GetGoal returns the goal with the given id, or core.ErrNotFound.
		GetGoal(ctx context.Context, id string) (core.Goal, error)
		// UpdateGoal replaces the stored goal with the same id.
		UpdateGoal(ctx context.Context, g core.Goal) error
		// DeleteGoal removes the goal by id, or returns core.ErrNotFound.
		DeleteGoal(ctx context.Context, id string) error
		// ListGoals returns all goals in insertion order.
		ListGoals(ctx context.Context) ([]core.Goal, error)
	}

	// Store bundles both collections behind one backend.
	Store interface {
		TransactionStore
		GoalStore
	}
)
