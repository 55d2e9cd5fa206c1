package handlers

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
)

// FortuneHandler draws a fortune for POST /api/fortune.
type FortuneHandler struct {
	logger    *common.Logger
	generator *fortune.Generator
}

// NewFortuneHandler creates a new fortune handler.
func NewFortuneHandler(logger *common.Logger, generator *fortune.Generator) *FortuneHandler {
	return &FortuneHandler{logger: logger.OrSilent(), generator: generator}
}

// ServeHTTP handles POST /api/fortune. The generator never fails, so the only
// error responses are for bodies that cannot be decoded or carry no name.
func (h *FortuneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req fortune.Request
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	result := h.generator.Generate(r.Context(), req)

	common.LoggerFor(r.Context(), h.logger).Debug().
		Str("scenario", result.Scenario).
		Str("source", string(result.Source)).
		Str("big_character", result.BigCharacter).
		Msg("fortune drawn")

	WriteJSON(w, http.StatusOK, result)
}
