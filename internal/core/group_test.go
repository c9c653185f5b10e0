package core

import (
	"reflect"
	"testing"
	"time"
)

func TestGroupByDateDaily(t *testing.T) {
	txns := []Transaction{
		{ID: "old", Date: date(2024, time.January, 10), Type: Expense, Category: "Belanja", Amount: 100},
		{ID: "newest", Date: date(2024, time.January, 15), Type: Income, Category: "Gaji", Amount: 300},
		{ID: "mid", Date: date(2024, time.January, 12), Type: Expense, Category: "Tagihan", Amount: 200},
		{ID: "also15", Date: time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local), Type: Expense, Category: "Hiburan", Amount: 50},
	}

	groups := GroupByDate(txns, DailyView)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	want := []string{"15 Januari 2024", "12 Januari 2024", "10 Januari 2024"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}

	// Most recent first inside the shared bucket too.
	if groups[0].Items[0].ID != "newest" || groups[0].Items[1].ID != "also15" {
		t.Fatalf("bucket order = %+v", groups[0].Items)
	}
}

func TestGroupByDateMonthly(t *testing.T) {
	txns := []Transaction{
		{ID: "feb", Date: date(2024, time.February, 1), Type: Expense, Category: "Belanja", Amount: 100},
		{ID: "jan", Date: date(2024, time.January, 20), Type: Income, Category: "Gaji", Amount: 300},
	}
	groups := GroupByDate(txns, MonthlyView)
	if len(groups) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Label != "Februari 2024" || groups[1].Label != "Januari 2024" {
		t.Fatalf("labels = %q, %q", groups[0].Label, groups[1].Label)
	}
}

func TestGroupByDateIdempotent(t *testing.T) {
	txns := januaryLedger()
	first := GroupByDate(txns, DailyView)
	second := GroupByDate(txns, DailyView)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grouping is not stable across runs")
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	if groups := GroupByDate(nil, DailyView); len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}

func TestSearch(t *testing.T) {
	txns := []Transaction{
		{ID: "a", Type: Expense, Category: "Makanan & Minuman", Amount: 150000, Notes: "makan siang", Date: date(2024, time.January, 2)},
		{ID: "b", Type: Expense, Category: "Transportasi", Amount: 50000, Date: date(2024, time.January, 3)},
	}
	if got := Search(txns, "makan"); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("category/notes search = %+v", got)
	}
	if got := Search(txns, "50000"); len(got) != 2 {
		t.Fatalf("amount search should match 150000 and 50000, got %d", len(got))
	}
	if got := Search(txns, ""); len(got) != 2 {
		t.Fatalf("empty query must match all")
	}
	if got := Search(txns, "xyz"); len(got) != 0 {
		t.Fatalf("no match expected, got %+v", got)
	}
}

func TestCalendarHelpers(t *testing.T) {
	txns := januaryLedger()
	if !HasTransactions(txns, date(2024, time.January, 10)) {
		t.Fatalf("expected transactions on the 10th")
	}
	if HasTransactions(txns, date(2024, time.January, 11)) {
		t.Fatalf("expected none on the 11th")
	}
	if net := DayNet(txns, date(2024, time.January, 10)); net != 4850000 {
		t.Fatalf("day net = %d", net)
	}
	if net := DayNet(txns, date(2024, time.January, 15)); net != -50000 {
		t.Fatalf("day net = %d", net)
	}
}

func TestFilterView(t *testing.T) {
	txns := januaryLedger()
	if got := FilterView(txns, date(2024, time.January, 10), DailyView); len(got) != 2 {
		t.Fatalf("daily view = %d items", len(got))
	}
	if got := FilterView(txns, date(2024, time.January, 1), MonthlyView); len(got) != 3 {
		t.Fatalf("monthly view = %d items", len(got))
	}
	if got := FilterView(txns, date(2024, time.February, 1), MonthlyView); len(got) != 0 {
		t.Fatalf("february view = %d items", len(got))
	}
}
