package core

import (
	"testing"
	"time"
)

func TestNewGoalValidation(t *testing.T) {
	g, err := NewGoal("Dana Darurat", "6 bulan pengeluaran", 10000000)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if g.ID == "" || g.CurrentAmount != 0 || g.IsCompleted {
		t.Fatalf("unexpected initial state: %+v", g)
	}

	if _, err := NewGoal("", "", 1000); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if _, err := NewGoal("Liburan", "", 0); err == nil {
		t.Fatalf("expected error for zero target")
	}
}

func TestAddDepositRecomputes(t *testing.T) {
	g, _ := NewGoal("Liburan", "", 1000000)
	day := date(2024, time.January, 5)

	if err := g.AddDeposit(400000, day, "awal"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := g.AddDeposit(600000, day, ""); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if g.CurrentAmount != 1000000 {
		t.Fatalf("current = %d", g.CurrentAmount)
	}
	if !g.Achieved() {
		t.Fatalf("expected achieved")
	}
	if g.IsCompleted {
		t.Fatalf("achieved must not auto-complete")
	}
}

func TestAddDepositRejectsInvalid(t *testing.T) {
	g, _ := NewGoal("Liburan", "", 1000000)
	if err := g.AddDeposit(0, date(2024, time.January, 5), ""); err == nil {
		t.Fatalf("expected error for zero amount")
	}
	if err := g.AddDeposit(-500, date(2024, time.January, 5), ""); err == nil {
		t.Fatalf("expected error for negative amount")
	}
	if err := g.AddDeposit(500, time.Time{}, ""); err == nil {
		t.Fatalf("expected error for zero date")
	}
	if g.CurrentAmount != 0 || len(g.Deposits) != 0 {
		t.Fatalf("rejected deposit must not mutate goal: %+v", g)
	}
}

func TestDepositTotalsAssociative(t *testing.T) {
	day := date(2024, time.January, 5)

	a, _ := NewGoal("A", "", 10000000)
	for _, amt := range []int64{1000, 2000} {
		if err := a.AddDeposit(amt, day, ""); err != nil {
			t.Fatalf("deposit: %v", err)
		}
	}
	if err := a.AddDeposit(3000, day, ""); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	b, _ := NewGoal("B", "", 10000000)
	for _, amt := range []int64{1000, 2000, 3000} {
		if err := b.AddDeposit(amt, day, ""); err != nil {
			t.Fatalf("deposit: %v", err)
		}
	}

	if a.CurrentAmount != 6000 || b.CurrentAmount != 6000 {
		t.Fatalf("currents = %d, %d", a.CurrentAmount, b.CurrentAmount)
	}
}

func TestProgressAndCompletion(t *testing.T) {
	g, _ := NewGoal("Liburan", "", 1000000)
	_ = g.AddDeposit(250000, date(2024, time.January, 5), "")
	if p := g.Progress(); p != 25 {
		t.Fatalf("progress = %v", p)
	}

	g.MarkCompleted()
	if !g.IsCompleted {
		t.Fatalf("expected completed flag")
	}
}
