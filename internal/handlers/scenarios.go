package handlers

import (
	"net/http"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
)

// ScenariosHandler serves the scenario catalogue for GET /api/scenarios.
type ScenariosHandler struct {
	logger *common.Logger
}

// NewScenariosHandler creates a new scenarios handler.
func NewScenariosHandler(logger *common.Logger) *ScenariosHandler {
	return &ScenariosHandler{logger: logger}
}

// ServeHTTP handles GET /api/scenarios.
func (h *ScenariosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"default":         fortune.DefaultScenarioID,
		"scenarios":       fortune.Scenarios(),
		"loading_phrases": fortune.LoadingPhrases,
	})
}
