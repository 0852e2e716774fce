package handler

import (
	"sync"
	"time"

	"github.com/Astemirdum/bookreview-service/webui/internal/state"
	"github.com/google/uuid"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 10000
)

type session struct {
	store    *state.Store
	lastSeen time.Time
}

// sessions holds the per-browser stores. Entries idle longer than ttl are
// dropped, and past limit the least recently seen one is evicted.
type sessions struct {
	mu      sync.Mutex
	ttl     time.Duration
	limit   int
	now     func() time.Time
	entries map[string]*session
}

func newSessions(ttl time.Duration, limit int) *sessions {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if limit <= 0 {
		limit = defaultMaxSessions
	}
	return &sessions{
		ttl:     ttl,
		limit:   limit,
		now:     time.Now,
		entries: map[string]*session{},
	}
}

func (s *sessions) get(id string) (*state.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.entries, id)
		return nil, false
	}
	e.lastSeen = now
	return e.store, true
}

func (s *sessions) create() (string, *state.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	for len(s.entries) >= s.limit {
		s.evictOldest()
	}
	id := uuid.NewString()
	st := state.NewStore()
	s.entries[id] = &session{store: st, lastSeen: now}
	return id, st
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *sessions) sweep(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}

func (s *sessions) evictOldest() {
	var (
		oldest string
		seen   time.Time
	)
	for id, e := range s.entries {
		if oldest == "" || e.lastSeen.Before(seen) {
			oldest, seen = id, e.lastSeen
		}
	}
	delete(s.entries, oldest)
}
