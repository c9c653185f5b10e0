package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"duit/internal/core"
)

const dateLayout = "2006-01-02"

// amountField accepts either a JSON number or a display string with dot
// thousand separators ("5.000.000").
type amountField int64

func (a *amountField) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = amountField(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return core.ErrInvalidAmount
	}
	parsed, err := core.ParseAmount(s)
	if err != nil {
		return err
	}
	*a = amountField(parsed)
	return nil
}

type createTransactionRequest struct {
	Date     string      `json:"date"`
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Amount   amountField `json:"amount"`
	Notes    string      `json:"notes"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		writeDomainError(w, core.ErrInvalidDate)
		return
	}

	tx, err := core.NewTransaction(date, core.TransactionType(req.Type), req.Category, int64(req.Amount), req.Notes)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.store.AddTransaction(r.Context(), tx); err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateStats()
	slog.InfoContext(r.Context(), "Transaction created",
		"id", tx.ID, "type", tx.Type, "category", tx.Category, "amount", tx.Amount)
	writeJSON(w, http.StatusCreated, tx)
}

type transactionListResponse struct {
	Groups []core.DateGroup `json:"groups"`
	Totals core.Totals      `json:"totals"`
	Count  int              `json:"count"`
}

// handleListTransactions returns the ledger bucketed for display. Query
// parameters: view (daily|monthly), date (anchor day, defaults to today)
// and q (search).
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	view := core.View(r.URL.Query().Get("view"))
	if view == "" {
		view = core.MonthlyView
	}
	if !view.Valid() {
		writeError(w, http.StatusBadRequest, "view must be daily or monthly")
		return
	}

	ref := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	txns, err := s.store.ListTransactions(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	txns = core.FilterView(txns, ref, view)
	txns = core.Search(txns, r.URL.Query().Get("q"))

	writeJSON(w, http.StatusOK, transactionListResponse{
		Groups: core.GroupByDate(txns, view),
		Totals: core.Summarize(txns),
		Count:  len(txns),
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateStats()
	slog.InfoContext(r.Context(), "Transaction deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

type categoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Income:  core.IncomeCategories,
		Expense: core.ExpenseCategories,
	})
}

type calendarDay struct {
	Day             int    `json:"day"`
	Date            string `json:"date"`
	HasTransactions bool   `json:"hasTransactions"`
	Net             int64  `json:"net"`
}

// handleCalendar returns the per-day markers for the month containing the
// anchor date: whether the day has transactions and its net total.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	txns, err := s.store.ListTransactions(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	days := make([]calendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, calendarDay{
			Day:             d.Day(),
			Date:            d.Format(dateLayout),
			HasTransactions: core.HasTransactions(txns, d),
			Net:             core.DayNet(txns, d),
		})
	}
	writeJSON(w, http.StatusOK, days)
}

func parseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
