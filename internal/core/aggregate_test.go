package core

import (
	"testing"
	"time"
)

func januaryLedger() []Transaction {
	return []Transaction{
		{ID: "a", Date: date(2024, time.January, 10), Type: Income, Category: "Gaji", Amount: 5000000},
		{ID: "b", Date: date(2024, time.January, 10), Type: Expense, Category: "Makanan & Minuman", Amount: 150000},
		{ID: "c", Date: date(2024, time.January, 15), Type: Expense, Category: "Transportasi", Amount: 50000},
	}
}

func TestJanuaryMonthlyScenario(t *testing.T) {
	p := Resolve(date(2024, time.January, 1), Monthly)
	filtered := FilterPeriod(januaryLedger(), p)
	if len(filtered) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(filtered))
	}

	totals := Summarize(filtered)
	if totals.Income != 5000000 || totals.Expense != 200000 {
		t.Fatalf("totals = %+v", totals)
	}
	if totals.Net() != 4800000 {
		t.Fatalf("net = %d", totals.Net())
	}

	b := Aggregate(filtered, Expense)
	if b.Total != 200000 {
		t.Fatalf("expense total = %d", b.Total)
	}
	want := map[string]int{"Makanan & Minuman": 75, "Transportasi": 25}
	if len(b.Shares) != len(want) {
		t.Fatalf("shares = %+v", b.Shares)
	}
	for _, s := range b.Shares {
		if want[s.Category] != s.Percent {
			t.Fatalf("%s: percent %d, want %d", s.Category, s.Percent, want[s.Category])
		}
	}
}

func TestAggregateReconcilesToTotal(t *testing.T) {
	txns := []Transaction{
		{Date: date(2024, time.March, 1), Type: Income, Category: "Gaji", Amount: 1234567},
		{Date: date(2024, time.March, 2), Type: Income, Category: "Bonus", Amount: 89},
		{Date: date(2024, time.March, 3), Type: Income, Category: "Gaji", Amount: 4},
		{Date: date(2024, time.March, 4), Type: Expense, Category: "Tagihan", Amount: 999},
	}
	b := Aggregate(txns, Income)
	var sum int64
	for _, s := range b.Shares {
		sum += s.Amount
	}
	if sum != b.Total {
		t.Fatalf("share sum %d != total %d", sum, b.Total)
	}
	if b.Total != 1234660 {
		t.Fatalf("total = %d", b.Total)
	}
}

func TestAggregateEmptyWindow(t *testing.T) {
	p := Resolve(date(2030, time.May, 1), Monthly)
	filtered := FilterPeriod(januaryLedger(), p)
	if len(filtered) != 0 {
		t.Fatalf("expected empty filter result")
	}

	totals := Summarize(filtered)
	if totals.Income != 0 || totals.Expense != 0 {
		t.Fatalf("totals = %+v", totals)
	}

	b := Aggregate(filtered, Expense)
	if b.Total != 0 || len(b.Shares) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", b)
	}
}

func TestFilterRangeInclusive(t *testing.T) {
	txns := januaryLedger()
	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local)
	got := FilterRange(txns, from, to)
	if len(got) != 3 {
		t.Fatalf("expected all 3 inside inclusive range, got %d", len(got))
	}

	got = FilterRange(txns, from, time.Date(2024, 1, 14, 23, 59, 59, 0, time.Local))
	if len(got) != 2 {
		t.Fatalf("expected 2 before the 15th, got %d", len(got))
	}
}

func TestCategorySummary(t *testing.T) {
	txns := []Transaction{
		{Date: date(2024, time.January, 2), Type: Expense, Category: "Lainnya", Amount: 100},
		{Date: date(2024, time.January, 3), Type: Income, Category: "Lainnya", Amount: 300},
		{Date: date(2024, time.January, 4), Type: Expense, Category: "Tagihan", Amount: 50},
	}
	rows := CategorySummary(txns)
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Category != "Lainnya" || rows[0].Income != 300 || rows[0].Expense != 100 {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if rows[1].Category != "Tagihan" || rows[1].Expense != 50 {
		t.Fatalf("row 1 = %+v", rows[1])
	}
}
