package core

import (
	"testing"
	"time"
)

func TestNewTransactionValidation(t *testing.T) {
	date := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	good, err := NewTransaction(date, Income, "Gaji", 5000000, "gaji bulanan")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if good.ID == "" {
		t.Fatalf("expected generated id")
	}

	cases := []struct {
		name     string
		date     time.Time
		typ      TransactionType
		category string
		amount   int64
	}{
		{"zero date", time.Time{}, Income, "Gaji", 100},
		{"bad type", date, TransactionType("transfer"), "Gaji", 100},
		{"zero amount", date, Income, "Gaji", 0},
		{"negative amount", date, Income, "Gaji", -100},
		{"unknown category", date, Income, "Sewa", 100},
		{"category of wrong type", date, Income, "Transportasi", 100},
	}
	for _, tc := range cases {
		if _, err := NewTransaction(tc.date, tc.typ, tc.category, tc.amount, ""); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestCategoryTaxonomy(t *testing.T) {
	if len(IncomeCategories) != 6 {
		t.Fatalf("expected 6 income categories, got %d", len(IncomeCategories))
	}
	if len(ExpenseCategories) != 8 {
		t.Fatalf("expected 8 expense categories, got %d", len(ExpenseCategories))
	}
	for _, typ := range []TransactionType{Income, Expense} {
		if !typ.ValidCategory("Lainnya") {
			t.Fatalf("%s: expected Lainnya catch-all", typ)
		}
	}
	if Income.ValidCategory("Tagihan") {
		t.Fatalf("expense category must not validate for income")
	}
}
