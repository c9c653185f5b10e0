package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Transaction is a single ledger entry. Transactions are immutable:
	// they are created once and can only be deleted, never edited.
	Transaction struct {
		ID       string          `json:"id"`
		Date     time.Time       `json:"date"`
		Type     TransactionType `json:"type"`
		Category string          `json:"category"`
		Amount   int64           `json:"amount"` // whole Rupiah
		Notes    string          `json:"notes,omitempty"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrUnknownCategory = errors.New("unknown category for type")
	ErrEmptyTitle      = errors.New("empty title")
	ErrNotFound        = errors.New("not found")
)

// IncomeCategories and ExpenseCategories are the fixed taxonomy. "Lainnya"
// is the catch-all in both lists.
var (
	IncomeCategories = []string{
		"Gaji",
		"Bonus",
		"Investasi",
		"Penjualan",
		"Hadiah",
		"Lainnya",
	}

	ExpenseCategories = []string{
		"Makanan & Minuman",
		"Transportasi",
		"Belanja",
		"Tagihan",
		"Hiburan",
		"Kesehatan",
		"Pendidikan",
		"Lainnya",
	}
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Categories returns the category list for the given type.
func (t TransactionType) Categories() []string {
	switch t {
	case Income:
		return IncomeCategories
	case Expense:
		return ExpenseCategories
	default:
		return nil
	}
}

// ValidCategory reports whether name belongs to the taxonomy of this type.
func (t TransactionType) ValidCategory(name string) bool {
	for _, c := range t.Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// NewTransaction builds a validated transaction with a fresh identifier.
func NewTransaction(date time.Time, typ TransactionType, category string, amount int64, notes string) (Transaction, error) {
	tx := Transaction{
		ID:       uuid.NewString(),
		Date:     date,
		Type:     typ,
		Category: strings.TrimSpace(category),
		Amount:   amount,
		Notes:    strings.TrimSpace(notes),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (tx Transaction) Validate() error {
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !tx.Type.ValidCategory(tx.Category) {
		return ErrUnknownCategory
	}
	return nil
}
