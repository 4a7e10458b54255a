package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/studykit/practicelog/internal/api/shared"
	"github.com/studykit/practicelog/internal/platform/logger"
	"github.com/studykit/practicelog/internal/service"
)

// maxImportBytes bounds the accepted import payload size.
const maxImportBytes = 16 << 20 // 16 MiB

// StatsHandler handles dashboard, review-plan, and data-management
// HTTP requests.
type StatsHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(svc *service.Service, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		svc:    svc,
		logger: logger.With(slog.String("component", "stats_handler")),
	}
}

// GetWeaknesses handles GET /api/weaknesses requests.
func (h *StatsHandler) GetWeaknesses(w http.ResponseWriter, r *http.Request) {
	weaknesses, err := h.svc.Weaknesses(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, weaknesses)
}

// GetTopicScore handles GET /api/topics/{topic}/score requests.
// Attempted is false for topics without any recorded practice.
func (h *StatsHandler) GetTopicScore(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	if topic == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Topic is required")
		return
	}

	score, attempted, err := h.svc.ConceptScore(r.Context(), topic)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TopicScoreResponse{
		Topic:     topic,
		Score:     score,
		Attempted: attempted,
	})
}

// GetSessions handles GET /api/sessions requests. The "days" query
// parameter sets the lookback window, defaulting to seven days.
func (h *StatsHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	days, ok := h.daysParam(w, r, 7)
	if !ok {
		return
	}

	sessions, err := h.svc.SessionHistory(r.Context(), days)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessions)
}

// GetDailyLog handles GET /api/daily-log requests. The "days" query
// parameter sets the window; the service defaults it when zero.
func (h *StatsHandler) GetDailyLog(w http.ResponseWriter, r *http.Request) {
	days, ok := h.daysParam(w, r, 0)
	if !ok {
		return
	}

	log, err := h.svc.DailyLog(r.Context(), days)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, log)
}

// GetStreak handles GET /api/streak requests.
func (h *StatsHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.svc.Streak(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StreakResponse{Streak: streak})
}

// GetDailyReview handles GET /api/daily-review requests.
func (h *StatsHandler) GetDailyReview(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GenerateDailyReview(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// GetProjectStatus handles GET /api/projects/{tool}/status requests.
func (h *StatsHandler) GetProjectStatus(w http.ResponseWriter, r *http.Request) {
	tool := chi.URLParam(r, "tool")
	if tool == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Tool is required")
		return
	}

	status, err := h.svc.GetProjectStatus(r.Context(), tool)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, status)
}

// GetOverallStats handles GET /api/stats requests.
func (h *StatsHandler) GetOverallStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetOverallStats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// Export handles GET /api/export requests, streaming the full document
// as pretty-printed JSON.
func (h *StatsHandler) Export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	data, err := h.svc.ExportData(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="practicelog-export.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write export response", slog.String("error", err.Error()))
	}
}

// Import handles POST /api/import requests, replacing the stored
// document wholesale. Malformed payloads are rejected with 400 and
// leave the store untouched.
func (h *StatsHandler) Import(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		log.Warn("failed to read import payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read request body")
		return
	}

	imported, err := h.svc.ImportData(r.Context(), payload)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if !imported {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Import payload is not recognizable")
		return
	}

	log.Info("imported replacement document", slog.Int("bytes", len(payload)))
	shared.RespondWithJSON(w, r, http.StatusOK, ImportResponse{Imported: true})
}

// Reset handles POST /api/reset requests, discarding all stored data.
func (h *StatsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := h.svc.ResetAll(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("reset all stored data")
	w.WriteHeader(http.StatusNoContent)
}

// daysParam parses the optional "days" query parameter. The second
// return value is false when the parameter was invalid and an error
// response has already been written.
func (h *StatsHandler) daysParam(w http.ResponseWriter, r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return fallback, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid days parameter")
		return 0, false
	}
	return days, true
}
