package core

import "time"

type (
	// Totals are the overall income and expense sums for a window. Both
	// are always computed together; the summary cards show them side by
	// side regardless of which breakdown type is active.
	Totals struct {
		Income  int64 `json:"income"`
		Expense int64 `json:"expense"`
	}

	// CategoryShare is one category's slice of a breakdown.
	CategoryShare struct {
		Category string `json:"category"`
		Amount   int64  `json:"amount"`
		Percent  int    `json:"percent"`
	}

	// Breakdown is the per-category split of one transaction type within
	// a window. Shares appear in first-encounter order over the filtered
	// list; categories with no transactions are absent rather than
	// zero-filled. An empty window yields Total == 0 and no shares.
	Breakdown struct {
		Type   TransactionType `json:"type"`
		Total  int64           `json:"total"`
		Shares []CategoryShare `json:"shares"`
	}

	// CategoryTotals pairs income and expense sums for one category, as
	// used by the export's category table.
	CategoryTotals struct {
		Category string `json:"category"`
		Income   int64  `json:"income"`
		Expense  int64  `json:"expense"`
	}
)

// Net returns income minus expense.
func (t Totals) Net() int64 {
	return t.Income - t.Expense
}

// FilterRange returns the transactions dated inside [from, to], inclusive
// on both ends. Order is preserved.
func FilterRange(txns []Transaction, from, to time.Time) []Transaction {
	var out []Transaction
	for _, tx := range txns {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterPeriod returns the transactions falling inside p.
func FilterPeriod(txns []Transaction, p Period) []Transaction {
	return FilterRange(txns, p.Start, p.End)
}

// Summarize computes the overall income and expense totals of txns.
func Summarize(txns []Transaction) Totals {
	var t Totals
	for _, tx := range txns {
		switch tx.Type {
		case Income:
			t.Income += tx.Amount
		case Expense:
			t.Expense += tx.Amount
		}
	}
	return t
}

// Aggregate splits the transactions of one type into per-category totals
// with rounded percentage shares. Percentages use round half away from
// zero, so a 150000/50000 split of 200000 comes out 75/25. The share
// amounts always reconcile to Total.
func Aggregate(txns []Transaction, typ TransactionType) Breakdown {
	b := Breakdown{Type: typ}
	index := make(map[string]int)
	for _, tx := range txns {
		if tx.Type != typ {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(b.Shares)
			index[tx.Category] = i
			b.Shares = append(b.Shares, CategoryShare{Category: tx.Category})
		}
		b.Shares[i].Amount += tx.Amount
		b.Total += tx.Amount
	}
	if b.Total == 0 {
		b.Shares = nil
		return b
	}
	for i := range b.Shares {
		b.Shares[i].Percent = roundPercent(b.Shares[i].Amount, b.Total)
	}
	return b
}

// CategorySummary computes income and expense totals per category across
// both types, in first-encounter order.
func CategorySummary(txns []Transaction) []CategoryTotals {
	var out []CategoryTotals
	index := make(map[string]int)
	for _, tx := range txns {
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategoryTotals{Category: tx.Category})
		}
		switch tx.Type {
		case Income:
			out[i].Income += tx.Amount
		case Expense:
			out[i].Expense += tx.Amount
		}
	}
	return out
}

// roundPercent computes round(100*part/total) half away from zero.
// Amounts are non-negative, so this matches the source's Math.round.
func roundPercent(part, total int64) int {
	return int((200*part + total) / (2 * total))
}
