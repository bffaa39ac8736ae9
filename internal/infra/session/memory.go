package session

import (
	"sync"
	"time"

	"stagelink/internal/domain/booking"
	"stagelink/internal/pkg/clock"

	"github.com/google/uuid"
)

type entry struct {
	wizard    *booking.Wizard
	expiresAt time.Time
}

// MemoryStore keeps wizard sessions in process memory with a sliding TTL.
// Every Put refreshes the deadline; expired sessions are dropped lazily on
// the next Get touching them.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *MemoryStore) Put(w *booking.Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[w.ID()] = entry{
		wizard:    w,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
}

func (s *MemoryStore) Get(id uuid.UUID) (*booking.Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if s.clock.Now().After(e.expiresAt) {
		delete(s.entries, id)
		return nil, false
	}
	return e.wizard, true
}

func (s *MemoryStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Sweep removes all expired sessions. Callers may run it periodically; Get
// already drops expired entries it touches, so sweeping is an optimization.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
