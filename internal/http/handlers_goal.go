package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"duit/internal/core"
)

type createGoalRequest struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	TargetAmount amountField `json:"targetAmount"`
}

type goalResponse struct {
	core.Goal
	Progress float64 `json:"progress"`
	Achieved bool    `json:"achieved"`
}

func toGoalResponse(g core.Goal) goalResponse {
	return goalResponse{Goal: g, Progress: g.Progress(), Achieved: g.Achieved()}
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := core.NewGoal(req.Title, req.Description, int64(req.TargetAmount))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.store.AddGoal(r.Context(), g); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Goal created", "id", g.ID, "title", g.Title, "target", g.TargetAmount)
	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.ListGoals(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]goalResponse, len(goals))
	for i, g := range goals {
		out[i] = toGoalResponse(g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.GetGoal(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.DeleteGoal(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Goal deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

type addDepositRequest struct {
	Amount amountField `json:"amount"`
	Date   string      `json:"date"`
	Note   string      `json:"note"`
}

func (s *Server) handleAddDeposit(w http.ResponseWriter, r *http.Request) {
	var req addDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err != nil {
			writeDomainError(w, core.ErrInvalidDate)
			return
		}
		date = parsed
	}

	g, err := s.store.GetGoal(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := g.AddDeposit(int64(req.Amount), date, req.Note); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.store.UpdateGoal(r.Context(), g); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Deposit added",
		"goal_id", g.ID, "amount", int64(req.Amount), "current", g.CurrentAmount)
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// handleCompleteGoal flips the one-way completion flag. Completion is only
// allowed once the deposits have reached the target.
func (s *Server) handleCompleteGoal(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.GetGoal(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if !g.Achieved() {
		writeError(w, http.StatusConflict, "goal target not reached")
		return
	}
	if g.IsCompleted {
		writeJSON(w, http.StatusOK, toGoalResponse(g))
		return
	}

	g.MarkCompleted()
	if err := s.store.UpdateGoal(r.Context(), g); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Goal completed", "id", g.ID)
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}
