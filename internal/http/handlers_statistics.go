package http

import (
	"log/slog"
	"net/http"
	"time"

	"duit/internal/core"
)

// StatisticsResponse is one fully aggregated period: the window, the
// totals and the per-category donut data for both types.
type StatisticsResponse struct {
	Label   string         `json:"label"`
	Start   time.Time      `json:"start"`
	End     time.Time      `json:"end"`
	Totals  core.Totals    `json:"totals"`
	Net     int64          `json:"net"`
	Income  core.Breakdown `json:"income"`
	Expense core.Breakdown `json:"expense"`
	Count   int            `json:"count"`
}

func parseGranularity(r *http.Request) (core.Granularity, bool) {
	v := r.URL.Query().Get("granularity")
	if v == "" {
		v = r.URL.Query().Get("period")
	}
	g := core.Granularity(v)
	if g == "" {
		g = core.Monthly
	}
	return g, g.Valid()
}

func parseAnchor(r *http.Request) (time.Time, bool) {
	ref := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		ref = parsed
	}
	return ref, true
}

func (s *Server) statistics(r *http.Request, ref time.Time, g core.Granularity) (StatisticsResponse, error) {
	period := core.Resolve(ref, g)
	key := string(g) + "|" + period.Start.Format(dateLayout)

	if cached, ok := s.statsCache.Get(key); ok {
		slog.DebugContext(r.Context(), "Statistics cache hit", "key", key)
		return cached, nil
	}

	txns, err := s.store.ListTransactions(r.Context())
	if err != nil {
		return StatisticsResponse{}, err
	}

	inPeriod := core.FilterPeriod(txns, period)
	totals := core.Summarize(inPeriod)
	resp := StatisticsResponse{
		Label:   period.Label,
		Start:   period.Start,
		End:     period.End,
		Totals:  totals,
		Net:     totals.Net(),
		Income:  core.Aggregate(inPeriod, core.Income),
		Expense: core.Aggregate(inPeriod, core.Expense),
		Count:   len(inPeriod),
	}

	s.statsCache.Set(key, resp)
	return resp, nil
}

// handleStatistics aggregates one period. Query parameters: granularity
// (weekly|monthly|yearly, default monthly) and date (anchor, default
// today).
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	g, ok := parseGranularity(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "granularity must be weekly, monthly or yearly")
		return
	}
	ref, ok := parseAnchor(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	resp, err := s.statistics(r, ref, g)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type navigateResponse struct {
	Date       string             `json:"date"`
	Statistics StatisticsResponse `json:"statistics"`
}

// handleNavigate steps the anchor date one unit in either direction and
// returns the statistics for the new period. direction is 1 or -1.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	g, ok := parseGranularity(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "granularity must be weekly, monthly or yearly")
		return
	}
	ref, ok := parseAnchor(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	direction := parseIntDefault(r.URL.Query().Get("direction"), 1)
	if direction != 1 && direction != -1 {
		writeError(w, http.StatusBadRequest, "direction must be 1 or -1")
		return
	}

	next := core.Navigate(ref, g, direction)
	resp, err := s.statistics(r, next, g)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, navigateResponse{
		Date:       next.Format(dateLayout),
		Statistics: resp,
	})
}
