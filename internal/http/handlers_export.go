package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"duit/internal/core"
	"duit/internal/report"
)

func parseRange(r *http.Request) (from, to time.Time, ok bool) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.ParseInLocation(dateLayout, fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.ParseInLocation(dateLayout, toStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	// Make the upper bound inclusive for the whole day.
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, true
}

func (s *Server) buildReport(r *http.Request) (report.Report, error) {
	from, to, ok := parseRange(r)
	if !ok {
		return report.Report{}, core.ErrInvalidDate
	}

	txns, err := s.store.ListTransactions(r.Context())
	if err != nil {
		return report.Report{}, err
	}
	return report.New(from, to, txns)
}

// handleExport streams the PDF for the requested range. An empty range is
// refused rather than shipping a blank document.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.buildReport(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	data, err := rep.PDF()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Report exported",
		"filename", rep.Filename(),
		"transactions", len(rep.Transactions))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.Filename()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

type exportPreviewResponse struct {
	Filename   string                `json:"filename"`
	From       string                `json:"from"`
	To         string                `json:"to"`
	Count      int                   `json:"count"`
	Totals     core.Totals           `json:"totals"`
	Net        int64                 `json:"net"`
	Categories []core.CategoryTotals `json:"categories"`
}

// handleExportPreview returns the report's summary without rendering the
// PDF, so a client can confirm the range before downloading.
func (s *Server) handleExportPreview(w http.ResponseWriter, r *http.Request) {
	rep, err := s.buildReport(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exportPreviewResponse{
		Filename:   rep.Filename(),
		From:       rep.From.Format(dateLayout),
		To:         rep.To.Format(dateLayout),
		Count:      len(rep.Transactions),
		Totals:     rep.Totals,
		Net:        rep.Totals.Net(),
		Categories: core.CategorySummary(rep.Transactions),
	})
}
