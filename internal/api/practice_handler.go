package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/studykit/practicelog/internal/api/shared"
	"github.com/studykit/practicelog/internal/platform/logger"
	"github.com/studykit/practicelog/internal/service"
)

// PracticeHandler handles practice-result and spaced-repetition HTTP requests.
type PracticeHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler
func NewPracticeHandler(svc *service.Service, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PracticeHandler")
	}

	return &PracticeHandler{
		svc:    svc,
		logger: logger.With(slog.String("component", "practice_handler")),
	}
}

// RecordResult handles POST /api/results requests.
// It records one finished practice session and returns its accuracy.
func (h *PracticeHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RecordResultRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	accuracy, err := h.svc.RecordResult(r.Context(), req.Tool, req.Topic, req.Correct, req.Total, req.Details)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("recorded practice result",
		slog.String("tool", req.Tool),
		slog.String("topic", req.Topic),
		slog.Int("total", req.Total))
	shared.RespondWithJSON(w, r, http.StatusCreated, RecordResultResponse{Accuracy: accuracy})
}

// RecordDosageQuiz handles POST /api/dosage-quiz requests.
// It scores a dosage calculation quiz against the streak gate.
func (h *PracticeHandler) RecordDosageQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req DosageQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	streak, err := h.svc.RecordDosageQuiz(r.Context(), req.Score, req.Total)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, streak)
}

// TrackExposure handles POST /api/exposures requests.
// It records one sighting of an item and moves it through the boxes.
func (h *PracticeHandler) TrackExposure(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TrackExposureRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	rec, err := h.svc.TrackExposure(r.Context(), req.ItemKey, req.WasCorrect)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, rec)
}

// GetDueItems handles GET /api/exposures/due requests. An optional
// "limit" query parameter caps the number of returned items.
func (h *PracticeHandler) GetDueItems(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	items, err := h.svc.DueItems(r.Context(), limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// GetExposureCount handles GET /api/exposures/count requests.
func (h *PracticeHandler) GetExposureCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.ExposureCount(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}
