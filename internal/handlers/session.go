package handlers

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/session"
)

// SessionHandler exposes the UI session state machine on /api/session.
type SessionHandler struct {
	logger   *common.Logger
	sessions *session.Service
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(logger *common.Logger, sessions *session.Service) *SessionHandler {
	return &SessionHandler{logger: logger.OrSilent(), sessions: sessions}
}

type sessionRequest struct {
	ID    string `json:"id"`
	Event string `json:"event"`
}

// ServeHTTP handles GET /api/session?id= and POST /api/session.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	if r.Method == http.MethodPost {
		h.HandlePost(w, r)
		return
	}
	h.HandleGet(w, r)
}

// HandleGet returns the session named by the id query parameter.
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id is required")
		return
	}

	sess, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, session.Transition{Session: sess})
}

// HandlePost creates a session when no id is given, otherwise applies event
// to the existing one.
func (h *SessionHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.ID == "" {
		sess, err := h.sessions.Create(r.Context())
		if err != nil {
			h.writeSessionError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusCreated, session.Transition{Session: sess})
		return
	}

	event, ok := session.ParseEvent(req.Event)
	if !ok {
		WriteError(w, http.StatusBadRequest, "unknown event")
		return
	}

	t, err := h.sessions.Apply(r.Context(), req.ID, event)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, t)
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, session.ErrInvalidTransition):
		WriteError(w, http.StatusConflict, err.Error())
	default:
		common.LoggerFor(r.Context(), h.logger).Error().Err(err).Msg("session store failure")
		WriteError(w, http.StatusInternalServerError, "session store unavailable")
	}
}
