package handlers

import (
	"net/http"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger    *common.Logger
	aiEnabled func() bool
}

// NewHealthHandler creates a new health handler. aiEnabled reports whether a
// generative backend is configured; nil means template mode.
func NewHealthHandler(logger *common.Logger, aiEnabled func() bool) *HealthHandler {
	return &HealthHandler{logger: logger, aiEnabled: aiEnabled}
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	mode := "template"
	if h.aiEnabled != nil && h.aiEnabled() {
		mode = "ai"
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"mode":   mode,
	})
}
