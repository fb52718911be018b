package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/activity-signup/internal/client"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
)

// memoryStore is an in-memory stand-in for the pgx repositories.
type memoryStore struct {
	set     model.ActivitySet
	failAll error
}

func (m *memoryStore) List(context.Context) (model.ActivitySet, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	return m.set, nil
}

func (m *memoryStore) Book(_ context.Context, activity, email string) error {
	if m.failAll != nil {
		return m.failAll
	}
	for i := range m.set {
		if m.set[i].Name != activity {
			continue
		}
		for _, p := range m.set[i].Participants {
			if p == email {
				return repository.ErrAlreadyRegistered
			}
		}
		if len(m.set[i].Participants) >= m.set[i].MaxParticipants {
			return repository.ErrActivityFull
		}
		m.set[i].Participants = append(m.set[i].Participants, email)
		return nil
	}
	return repository.ErrNotFound
}

func (m *memoryStore) Cancel(_ context.Context, activity, email string) error {
	for i := range m.set {
		if m.set[i].Name != activity {
			continue
		}
		for j, p := range m.set[i].Participants {
			if p == email {
				m.set[i].Participants = append(m.set[i].Participants[:j], m.set[i].Participants[j+1:]...)
				return nil
			}
		}
		return repository.ErrNotRegistered
	}
	return repository.ErrNotFound
}

func newTestServer(t *testing.T, store *memoryStore) *httptest.Server {
	t.Helper()
	h := NewActivityHandler(service.NewActivityService(store, store))
	r := chi.NewRouter()
	r.Use(Logger)
	h.Routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func seededStore() *memoryStore {
	return &memoryStore{set: model.ActivitySet{
		{Name: "Chess Club", ActivityDetails: model.ActivityDetails{MaxParticipants: 3, Participants: []string{"michael@mergington.edu", "daniel@mergington.edu"}}},
		{Name: "Arts/Crafts", ActivityDetails: model.ActivityDetails{MaxParticipants: 5, Participants: []string{}}},
		{Name: "Basketball", ActivityDetails: model.ActivityDetails{MaxParticipants: 15, Participants: []string{"james@mergington.edu"}}},
	}}
}

func TestListActivitiesKeepsOrder(t *testing.T) {
	srv := newTestServer(t, seededStore())

	resp, err := http.Get(srv.URL + "/activities")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var set model.ActivitySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(set) != 3 || set[0].Name != "Chess Club" || set[1].Name != "Arts/Crafts" || set[2].Name != "Basketball" {
		t.Fatalf("unexpected order %+v", set)
	}
}

func TestSignUpAndRemoveThroughClient(t *testing.T) {
	store := seededStore()
	srv := newTestServer(t, store)
	c := client.New(srv.URL, 0, srv.Client())
	ctx := context.Background()

	msg, err := c.SignUp(ctx, "Arts/Crafts", "New@Mergington.edu")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if msg != "Signed up new@mergington.edu for Arts/Crafts" {
		t.Fatalf("unexpected message %q", msg)
	}

	msg, err = c.RemoveParticipant(ctx, "Arts/Crafts", "new@mergington.edu")
	if err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}
	if msg != "Removed new@mergington.edu from Arts/Crafts" {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(store.set[1].Participants) != 0 {
		t.Fatalf("expected participant removed, got %v", store.set[1].Participants)
	}
}

func TestSignUpErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		status   int
		detail   string
	}{
		{name: "unknown activity", activity: "Unknown Club", email: "a@mergington.edu", status: http.StatusNotFound, detail: "Activity not found"},
		{name: "duplicate", activity: "Chess Club", email: "Michael@mergington.edu", status: http.StatusConflict, detail: "Student already signed up"},
		{name: "invalid email", activity: "Chess Club", email: "not-an-email", status: http.StatusUnprocessableEntity, detail: "value is not a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, seededStore())
			c := client.New(srv.URL, 0, srv.Client())

			_, err := c.SignUp(context.Background(), tt.activity, tt.email)
			apiErr, ok := client.IsAPIError(err)
			if !ok {
				t.Fatalf("expected api error, got %v", err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Detail != tt.detail {
				t.Fatalf("got %d %q, want %d %q", apiErr.StatusCode, apiErr.Detail, tt.status, tt.detail)
			}
		})
	}
}

func TestSignUpWhenFull(t *testing.T) {
	store := seededStore()
	srv := newTestServer(t, store)
	c := client.New(srv.URL, 0, srv.Client())

	if _, err := c.SignUp(context.Background(), "Chess Club", "third@mergington.edu"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, err := c.SignUp(context.Background(), "Chess Club", "fourth@mergington.edu")
	apiErr, ok := client.IsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusConflict || apiErr.Detail != "Activity is full" {
		t.Fatalf("expected activity full, got %v", err)
	}
}

func TestRemoveSeededParticipant(t *testing.T) {
	store := seededStore()
	srv := newTestServer(t, store)
	c := client.New(srv.URL, 0, srv.Client())

	msg, err := c.RemoveParticipant(context.Background(), "Chess Club", "michael@mergington.edu")
	if err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}
	if msg != "Removed michael@mergington.edu from Chess Club" {
		t.Fatalf("unexpected message %q", msg)
	}
	if got := store.set[0].Participants; len(got) != 1 || got[0] != "daniel@mergington.edu" {
		t.Fatalf("expected only daniel left, got %v", got)
	}

	_, err = c.RemoveParticipant(context.Background(), "Chess Club", "missing@mergington.edu")
	apiErr, ok := client.IsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Participant not found in activity" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRemoveParticipantNotRegistered(t *testing.T) {
	srv := newTestServer(t, seededStore())
	c := client.New(srv.URL, 0, srv.Client())

	_, err := c.RemoveParticipant(context.Background(), "Basketball", "ghost@mergington.edu")
	apiErr, ok := client.IsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Participant not found in activity" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	store := seededStore()
	store.failAll = errors.New("pq: password authentication failed")
	srv := newTestServer(t, store)

	resp, err := http.Get(srv.URL + "/activities")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var body model.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != http.StatusInternalServerError || strings.Contains(body.Detail, "password") {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body.Detail)
	}
}

func TestRedirectTo(t *testing.T) {
	rec := httptest.NewRecorder()
	RedirectTo("http://localhost:8080/")(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTemporaryRedirect || rec.Header().Get("Location") != "http://localhost:8080/" {
		t.Fatalf("unexpected redirect %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	RedirectTo("")(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a view url, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/activities", nil))

	if rec.Code != http.StatusNoContent || called {
		t.Fatalf("expected preflight short-circuit, got %d called=%v", rec.Code, called)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}
