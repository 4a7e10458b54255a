package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/studykit/practicelog/internal/api"
	apiMiddleware "github.com/studykit/practicelog/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	practiceHandler := api.NewPracticeHandler(app.service, app.logger)
	wrongAnswerHandler := api.NewWrongAnswerHandler(app.service, app.logger)
	statsHandler := api.NewStatsHandler(app.service, app.logger)
	registryHandler := api.NewRegistryHandler()

	r.Route("/api", func(r chi.Router) {
		// Practice results and the dosage streak gate
		r.Post("/results", practiceHandler.RecordResult)
		r.Post("/dosage-quiz", practiceHandler.RecordDosageQuiz)

		// Spaced repetition exposure tracking
		r.Post("/exposures", practiceHandler.TrackExposure)
		r.Get("/exposures/due", practiceHandler.GetDueItems)
		r.Get("/exposures/count", practiceHandler.GetExposureCount)

		// Wrong-answer ledger
		r.Post("/wrong-answers", wrongAnswerHandler.Add)
		r.Get("/wrong-answers/due", wrongAnswerHandler.GetDue)
		r.Post("/wrong-answers/{id}/retest", wrongAnswerHandler.Retest)
		r.Get("/wrong-answers/stats", wrongAnswerHandler.GetStats)

		// Weakness detection and concept scores
		r.Get("/weaknesses", statsHandler.GetWeaknesses)
		r.Get("/topics/{topic}/score", statsHandler.GetTopicScore)

		// Activity history
		r.Get("/sessions", statsHandler.GetSessions)
		r.Get("/daily-log", statsHandler.GetDailyLog)
		r.Get("/streak", statsHandler.GetStreak)

		// Daily review plan
		r.Get("/daily-review", statsHandler.GetDailyReview)

		// Dashboard and data management
		r.Get("/projects/{tool}/status", statsHandler.GetProjectStatus)
		r.Get("/stats", statsHandler.GetOverallStats)
		r.Get("/export", statsHandler.Export)
		r.Post("/import", statsHandler.Import)
		r.Post("/reset", statsHandler.Reset)

		// Static registries
		r.Get("/registry/topics", registryHandler.GetTopics)
		r.Get("/registry/tools", registryHandler.GetTools)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
