package api

import (
	"net/http"

	"github.com/studykit/practicelog/internal/api/shared"
	"github.com/studykit/practicelog/internal/domain"
)

// RegistryHandler serves the static topic and tool registries.
type RegistryHandler struct{}

// NewRegistryHandler creates a new RegistryHandler
func NewRegistryHandler() *RegistryHandler {
	return &RegistryHandler{}
}

// GetTopics handles GET /api/registry/topics requests.
func (h *RegistryHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, domain.Topics)
}

// GetTools handles GET /api/registry/tools requests.
func (h *RegistryHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, domain.Tools)
}
