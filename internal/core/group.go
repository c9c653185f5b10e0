package core

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DailyView   View = "daily"
	MonthlyView View = "monthly"
)

type (
	// View selects how the transaction list is bucketed for display.
	View string

	// DateGroup is one chronological bucket of transactions.
	DateGroup struct {
		Label string        `json:"label"`
		Items []Transaction `json:"items"`
	}
)

func (v View) Valid() bool {
	return v == DailyView || v == MonthlyView
}

// GroupByDate buckets transactions for chronological display. Daily view
// groups by full date ("2 Januari 2024"), monthly view by month and year
// ("Januari 2024"). The list is first sorted descending by date, then
// bucketed in one pass, so the most recent bucket comes first and items
// inside each bucket stay in descending date order. Buckets exist only
// for dates that have transactions.
func GroupByDate(txns []Transaction, view View) []DateGroup {
	sorted := make([]Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var groups []DateGroup
	index := make(map[string]int)
	for _, tx := range sorted {
		label := FormatDate(tx.Date)
		if view == MonthlyView {
			label = fmt.Sprintf("%s %d", monthNames[tx.Date.Month()], tx.Date.Year())
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Items = append(groups[i].Items, tx)
	}
	return groups
}

// Search filters transactions by a case-insensitive query against
// category, notes, and the amount's digits. An empty query matches
// everything.
func Search(txns []Transaction, query string) []Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return txns
	}
	var out []Transaction
	for _, tx := range txns {
		if strings.Contains(strings.ToLower(tx.Category), query) ||
			strings.Contains(strings.ToLower(tx.Notes), query) ||
			strings.Contains(fmt.Sprintf("%d", tx.Amount), query) {
			out = append(out, tx)
		}
	}
	return out
}
