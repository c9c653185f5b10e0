package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// Deposit is a single contribution towards a goal.
	Deposit struct {
		ID     string    `json:"id"`
		Amount int64     `json:"amount"` // whole Rupiah
		Date   time.Time `json:"date"`
		Note   string    `json:"note,omitempty"`
	}

	// Goal is a savings target funded by discrete deposits. CurrentAmount
	// is always derived from the deposit list and never set directly.
	Goal struct {
		ID            string    `json:"id"`
		Title         string    `json:"title"`
		Description   string    `json:"description,omitempty"`
		TargetAmount  int64     `json:"targetAmount"`
		CurrentAmount int64     `json:"currentAmount"`
		Deposits      []Deposit `json:"deposits"`
		IsCompleted   bool      `json:"isCompleted"`
		CreatedAt     time.Time `json:"createdAt"`
	}
)

// NewGoal builds a validated goal with a fresh identifier and no deposits.
func NewGoal(title, description string, targetAmount int64) (Goal, error) {
	g := Goal{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(title),
		Description:  strings.TrimSpace(description),
		TargetAmount: targetAmount,
		CreatedAt:    time.Now(),
	}
	if err := g.Validate(); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func (g Goal) Validate() error {
	if g.Title == "" {
		return ErrEmptyTitle
	}
	if g.TargetAmount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// AddDeposit appends a deposit and recomputes CurrentAmount from the full
// deposit list. Non-positive amounts are rejected and leave the goal
// unchanged.
func (g *Goal) AddDeposit(amount int64, date time.Time, note string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if date.IsZero() {
		return ErrInvalidDate
	}
	g.Deposits = append(g.Deposits, Deposit{
		ID:     uuid.NewString(),
		Amount: amount,
		Date:   date,
		Note:   strings.TrimSpace(note),
	})
	g.recompute()
	return nil
}

// Achieved reports whether the deposits have reached the target.
func (g Goal) Achieved() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Progress returns the percentage of the target reached, uncapped.
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return float64(g.CurrentAmount) / float64(g.TargetAmount) * 100
}

// MarkCompleted flips the one-way completion flag. The domain does not
// require Achieved() here; callers that want the achieved-only rule
// enforce it themselves.
func (g *Goal) MarkCompleted() {
	g.IsCompleted = true
}

func (g *Goal) recompute() {
	var sum int64
	for _, d := range g.Deposits {
		sum += d.Amount
	}
	g.CurrentAmount = sum
}
