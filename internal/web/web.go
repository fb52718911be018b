// Package web serves the activity sign-up view: one view controller per
// browser session, rendered as a full page and driven by form posts.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Shivanand-hulikatti/activity-signup/internal/handler"
	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

// SessionCookie names the cookie that binds a browser to its controller.
const SessionCookie = "activities_session"

const (
	signupPath  = "/signup"
	removePath  = view.DefaultRemoveAction
	refreshPath = "/refresh"
)

// ControllerFactory builds the controller of a new session.
type ControllerFactory func() *view.Controller

// Server routes browser requests to per-session view controllers.
type Server struct {
	newController ControllerFactory
	sessions      *sessionStore
}

// NewServer constructs a Server. idle is the session idle timeout; zero
// keeps sessions forever.
func NewServer(newController ControllerFactory, idle time.Duration) *Server {
	return &Server{
		newController: newController,
		sessions:      newSessionStore(idle),
	}
}

// Routes builds the chi router of the view service.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(handler.Logger)

	r.Get("/health", handler.HealthCheck)
	r.Get("/", s.Page)
	r.Post(signupPath, s.SignUp)
	r.Post(removePath, s.RemoveParticipant)
	r.Post(refreshPath, s.Refresh)
	return r
}

// RunJanitor expires idle sessions until ctx is done.
func (s *Server) RunJanitor(ctx context.Context, interval time.Duration) {
	s.sessions.run(ctx, interval)
}

// Page handles GET /. Every page load fetches fresh activity state, except
// the redirect that follows a form post, which shows what the post rendered.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	id, c, created := s.controller(w, r)
	if !created && !s.sessions.takeRendered(id) {
		c.Load(r.Context())
	}
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(page(c.Snapshot())).ServeHTTP(w, r)
}

// SignUp handles POST /signup as a sign-up form submission.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	s.dispatch(w, r, view.Event{
		Kind: view.EventSubmit,
		Fields: map[string]string{
			view.FieldEmail:    r.PostForm.Get(view.FieldEmail),
			view.FieldActivity: r.PostForm.Get(view.FieldActivity),
		},
	})
}

// RemoveParticipant handles POST /participants/remove as a click on a
// participant's removal control.
func (s *Server) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	s.dispatch(w, r, view.Event{
		Kind:   view.EventListClick,
		Target: view.NewRemoveControl(r.PostForm.Get(view.FieldActivity), r.PostForm.Get(view.FieldEmail)),
	})
}

// Refresh handles POST /refresh by reloading the activity state.
func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, view.Event{Kind: view.EventLoad})
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev view.Event) {
	id, c, _ := s.controller(w, r)
	if err := c.Dispatch(r.Context(), ev); err != nil {
		slog.ErrorContext(r.Context(), "dispatch failed", slog.String("event", string(ev.Kind)), slog.Any("error", err))
		http.Error(w, "unsupported action", http.StatusBadRequest)
		return
	}
	s.sessions.markRendered(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// controller returns the session id and controller, starting and
// initialising a new session when the cookie is missing or expired. created
// reports whether that happened.
func (s *Server) controller(w http.ResponseWriter, r *http.Request) (id string, c *view.Controller, created bool) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if existing, ok := s.sessions.get(cookie.Value); ok {
			return cookie.Value, existing, false
		}
	} else if !errors.Is(err, http.ErrNoCookie) {
		slog.WarnContext(r.Context(), "bad session cookie", slog.Any("error", err))
	}

	c = s.newController()
	c.Init(r.Context())
	id = s.sessions.add(c)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, c, true
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}
