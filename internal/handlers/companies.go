package handlers

import (
	"net/http"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
)

const (
	defaultSuggestLimit = 5
	maxSuggestLimit     = 20
)

// CompaniesHandler serves company autocomplete for GET /api/companies.
type CompaniesHandler struct {
	logger *common.Logger
}

// NewCompaniesHandler creates a new companies handler.
func NewCompaniesHandler(logger *common.Logger) *CompaniesHandler {
	return &CompaniesHandler{logger: logger}
}

// ServeHTTP handles GET /api/companies?q=&limit=.
func (h *CompaniesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	limit := QueryInt(r, "limit", defaultSuggestLimit)
	if limit <= 0 || limit > maxSuggestLimit {
		limit = defaultSuggestLimit
	}

	suggestions := fortune.Suggest(r.URL.Query().Get("q"), limit)
	if suggestions == nil {
		suggestions = []fortune.Company{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"companies": suggestions,
	})
}
