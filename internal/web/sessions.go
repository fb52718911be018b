package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

// session is one browser's view controller.
type session struct {
	controller *view.Controller
	lastSeen   time.Time
	// rendered is set when a form post has just refreshed the controller and
	// cleared by the page request that follows the redirect.
	rendered bool
}

// sessionStore keeps a controller per browser session and expires idle ones.
type sessionStore struct {
	mu      sync.Mutex
	idle    time.Duration
	now     func() time.Time
	entries map[string]*session
}

func newSessionStore(idle time.Duration) *sessionStore {
	return &sessionStore{
		idle:    idle,
		now:     time.Now,
		entries: make(map[string]*session),
	}
}

// get returns the live controller for id and refreshes its idle deadline.
func (s *sessionStore) get(id string) (*view.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if s.expired(entry) {
		delete(s.entries, id)
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.controller, true
}

// add stores controller under a fresh session id.
func (s *sessionStore) add(controller *view.Controller) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &session{controller: controller, lastSeen: s.now()}
	return id
}

// markRendered flags the session as refreshed by the current request.
func (s *sessionStore) markRendered(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[id]; ok {
		entry.rendered = true
	}
}

// takeRendered reports and clears the rendered flag.
func (s *sessionStore) takeRendered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	rendered := entry.rendered
	entry.rendered = false
	return rendered
}

// sweep drops expired sessions and returns how many were removed.
func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *sessionStore) expired(entry *session) bool {
	return s.idle > 0 && s.now().Sub(entry.lastSeen) > s.idle
}

// run sweeps every interval until ctx is done.
func (s *sessionStore) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}
