package http

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"product-catalog/internal/catalog"

	"github.com/google/uuid"
)

type cartEntry struct {
	cart     *catalog.SessionCart
	lastSeen time.Time
}

// CartStore holds one SessionCart per client session, keyed by a random ID.
// Carts live in process memory and are dropped after idle time without use.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
	idle  time.Duration
	now   func() time.Time
}

func NewCartStore(idle time.Duration) *CartStore {
	return &CartStore{
		carts: make(map[string]*cartEntry),
		idle:  idle,
		now:   time.Now,
	}
}

func (s *CartStore) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	s.carts[id] = &cartEntry{cart: catalog.NewSessionCart(), lastSeen: s.now()}
	s.mu.Unlock()

	return id
}

// Get returns the cart and counts as a use of it.
func (s *CartStore) Get(id string) (*catalog.SessionCart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.carts[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.cart, true
}

func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Sweep drops carts unused for longer than the idle timeout and reports how
// many it dropped.
func (s *CartStore) Sweep() int {
	cutoff := s.now().Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, entry := range s.carts {
		if entry.lastSeen.Before(cutoff) {
			delete(s.carts, id)
			dropped++
		}
	}
	return dropped
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *CartStore) RunSweeper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Info("idle carts dropped", "count", n, "remaining", s.Len())
			}
		}
	}
}
