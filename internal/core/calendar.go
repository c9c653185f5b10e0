package core

import "time"

// Calendar helpers backing the date picker: day markers and per-day net
// totals over the whole ledger.

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same month of the same
// year.
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// HasTransactions reports whether any transaction is dated on day.
func HasTransactions(txns []Transaction, day time.Time) bool {
	for _, tx := range txns {
		if SameDay(tx.Date, day) {
			return true
		}
	}
	return false
}

// DayNet returns income minus expense for the given day.
func DayNet(txns []Transaction, day time.Time) int64 {
	var net int64
	for _, tx := range txns {
		if !SameDay(tx.Date, day) {
			continue
		}
		if tx.Type == Income {
			net += tx.Amount
		} else {
			net -= tx.Amount
		}
	}
	return net
}

// FilterView returns the transactions visible around ref in the given
// view: the exact day for daily, the whole month for monthly.
func FilterView(txns []Transaction, ref time.Time, view View) []Transaction {
	var out []Transaction
	for _, tx := range txns {
		switch view {
		case DailyView:
			if SameDay(tx.Date, ref) {
				out = append(out, tx)
			}
		case MonthlyView:
			if SameMonth(tx.Date, ref) {
				out = append(out, tx)
			}
		}
	}
	return out
}
