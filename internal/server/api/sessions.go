// Package api provides HTTP API handlers for the Mudra recognition service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/recognizer"
	"github.com/ayusman/mudra/internal/store"
)

// SessionHandler handles HTTP requests for recognition sessions.
type SessionHandler struct {
	manager *app.Manager
	store   *store.Store
}

// NewSessionHandler creates a new SessionHandler. The store is optional and
// only used for listing persisted session metadata.
func NewSessionHandler(m *app.Manager, s *store.Store) *SessionHandler {
	return &SessionHandler{manager: m, store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods. Expected paths:
//
//	/api/sessions
//	/api/sessions/{id}
//	/api/sessions/{id}/frames
//	/api/sessions/{id}/reset
//	/api/sessions/{id}/events
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id, sub, _ := strings.Cut(path, "/")
	switch sub {
	case "":
		switch r.Method {
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "frames":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.processFrame(w, r, id)
	case "reset":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.reset(w, r, id)
	case "events":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.events(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

// Request and response types

type createSessionRequest struct {
	Label string `json:"label"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type frameRequest struct {
	Rect      landmark.Rect `json:"rect"`
	Landmarks landmark.Set  `json:"landmarks"`
}

type listEventsResponse struct {
	Events []store.Event `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// create handles POST /api/sessions and starts a new session.
func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	id, err := h.manager.CreateSession(req.Label)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Label: req.Label})
}

// list handles GET /api/sessions and returns all live sessions.
func (h *SessionHandler) list(w http.ResponseWriter, r *http.Request) {
	ids := h.manager.Sessions()

	sessions := make([]sessionResponse, 0, len(ids))
	for _, id := range ids {
		resp := sessionResponse{ID: id}
		if h.store != nil {
			if sess, err := h.store.Sessions().GetByID(id); err == nil {
				resp.Label = sess.Label
			}
		}
		sessions = append(sessions, resp)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.manager.RemoveSession(id); err != nil {
		if errors.Is(err, app.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// processFrame handles POST /api/sessions/{id}/frames: one rect plus
// landmark set in, one recognition result out.
func (h *SessionHandler) processFrame(w http.ResponseWriter, r *http.Request, id string) {
	var req frameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.manager.ProcessFrame(id, req.Rect, req.Landmarks)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, recognizer.ErrTooFewLandmarks):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// reset handles POST /api/sessions/{id}/reset.
func (h *SessionHandler) reset(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.manager.ResetSession(id); err != nil {
		if errors.Is(err, app.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// events handles GET /api/sessions/{id}/events with an optional ?limit=N.
func (h *SessionHandler) events(w http.ResponseWriter, r *http.Request, id string) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	events, err := h.manager.Events(id, limit)
	if err != nil {
		if errors.Is(err, app.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if events == nil {
		events = []store.Event{}
	}
	writeJSON(w, http.StatusOK, listEventsResponse{Events: events})
}
