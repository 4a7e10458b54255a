package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studykit/practicelog/internal/api/shared"
	"github.com/studykit/practicelog/internal/domain"
	"github.com/studykit/practicelog/internal/platform/logger"
	"github.com/studykit/practicelog/internal/service"
)

// WrongAnswerHandler handles wrong-answer ledger HTTP requests.
type WrongAnswerHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewWrongAnswerHandler creates a new WrongAnswerHandler
func NewWrongAnswerHandler(svc *service.Service, logger *slog.Logger) *WrongAnswerHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WrongAnswerHandler")
	}

	return &WrongAnswerHandler{
		svc:    svc,
		logger: logger.With(slog.String("component", "wrong_answer_handler")),
	}
}

// Add handles POST /api/wrong-answers requests.
// All entry fields are optional; missing ones default to empty strings.
func (h *WrongAnswerHandler) Add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var entry domain.WrongAnswerEntry
	if err := shared.DecodeJSON(r, &entry); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.svc.AddWrongAnswer(r.Context(), entry)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("added wrong answer", slog.String("id", rec.ID), slog.String("topic", rec.Topic))
	shared.RespondWithJSON(w, r, http.StatusCreated, rec)
}

// GetDue handles GET /api/wrong-answers/due requests.
func (h *WrongAnswerHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	due, err := h.svc.WrongAnswersDue(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, due)
}

// Retest handles POST /api/wrong-answers/{id}/retest requests.
// An unknown id yields 404 without touching the ledger.
func (h *WrongAnswerHandler) Retest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Wrong answer ID is required")
		return
	}

	var req RetestRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.String("id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.svc.RetestWrongAnswer(r.Context(), id, req.WasCorrect)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if rec == nil {
		log.Debug("retest for unknown wrong answer", slog.String("id", id))
		shared.RespondWithError(w, r, http.StatusNotFound, "Wrong answer not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rec)
}

// GetStats handles GET /api/wrong-answers/stats requests.
func (h *WrongAnswerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.WrongAnswerStats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
