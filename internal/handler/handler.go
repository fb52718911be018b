// Package handler contains the chi HTTP handlers of the activities API and
// the middleware shared by both servers.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
)

// ActivityHandler holds the HTTP handlers of the activities API.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// activityParam returns the decoded {activity} segment. chi matches on the raw
// path when the request carried escaped slashes, so that case is decoded here.
func activityParam(r *http.Request) string {
	raw := chi.URLParam(r, "activity")
	if r.URL.RawPath == "" {
		return raw
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// writeServiceError maps service and repository errors to API responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusUnprocessableEntity, service.ErrInvalidEmail.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "Student already signed up")
	case errors.Is(err, repository.ErrActivityFull):
		writeError(w, http.StatusConflict, "Activity is full")
	case errors.Is(err, repository.ErrNotRegistered):
		writeError(w, http.StatusNotFound, "Participant not found in activity")
	default:
		slog.ErrorContext(r.Context(), "activities api failure",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// Returns a JSON object keyed by activity name, in creation order.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.ListActivities(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if set == nil {
		set = model.ActivitySet{}
	}
	writeJSON(w, http.StatusOK, set)
}

// SignUp handles POST /activities/{activity}/signup?email=
func (h *ActivityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.SignUp(r.Context(), activityParam(r), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RemoveParticipant handles DELETE /activities/{activity}/participants?email=
func (h *ActivityHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Unregister(r.Context(), activityParam(r), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Routes mounts the activities API on r.
func (h *ActivityHandler) Routes(r chi.Router) {
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{activity}/signup", h.SignUp)
		r.Delete("/{activity}/participants", h.RemoveParticipant)
	})
}

// RedirectTo handles GET / by sending the browser to the view service.
func RedirectTo(location string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if location == "" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, location, http.StatusTemporaryRedirect)
	}
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
