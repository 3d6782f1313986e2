package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/farm"
	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/metrics"
)

// Manager is a bounded registry of live farm sessions.
// Sessions idle for longer than the TTL, or pushed out by capacity, are evicted
// and their clocks paused. Evicted state is gone.
type Manager struct {
	// mu orders refreshes against Delete and Close. TTL expiry runs on the
	// LRU's own goroutine and is not covered.
	mu      sync.Mutex
	lru     *expirable.LRU[string, *farm.Session]
	catalog farm.CropLookup
	opts    []farm.Option
}

// NewManager creates a registry holding at most size sessions for ttl after last use.
// opts are applied to every session it creates.
func NewManager(catalog farm.CropLookup, size int, ttl time.Duration, opts ...farm.Option) *Manager {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		lru:     expirable.NewLRU[string, *farm.Session](size, onEvict, ttl),
		catalog: catalog,
		opts:    opts,
	}
}

func onEvict(id string, s *farm.Session) {
	s.Clock().Pause()
	metrics.ActiveSessions.Dec()
	metrics.SessionsEvicted.Inc()
	logger.FromContext(context.Background()).Debug(LogMsgSessionEvicted, logger.AttrKeySessionID, id)
}

// Create starts a new session under a fresh id
func (m *Manager) Create(ctx context.Context) (*farm.Session, error) {
	id := uuid.NewString()
	s, err := farm.NewSession(id, m.catalog, m.opts...)
	if err != nil {
		return nil, err
	}
	m.lru.Add(id, s)
	metrics.ActiveSessions.Inc()
	logger.FromContext(ctx).Info(LogMsgSessionCreated, logger.AttrKeySessionID, id, "plots", s.GridSize())
	return s, nil
}

// Get returns a live session and refreshes its idle timer
func (m *Manager) Get(id string) (*farm.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	// Add on an existing key only resets its expiry. If the entry expired after
	// Get, onEvict has already paused it and Add registers it again.
	m.lru.Add(id, s)
	if s.Clock().Paused() {
		revive(id, s)
	}
	return s, nil
}

// revive undoes onEvict for a session that is registered again
func revive(id string, s *farm.Session) {
	s.Clock().Resume()
	metrics.ActiveSessions.Inc()
	logger.FromContext(context.Background()).Debug(LogMsgSessionRevived, logger.AttrKeySessionID, id)
}

// Delete ends a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.lru.Remove(id) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return nil
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	return m.lru.Len()
}

// ForEach calls fn for every live session without refreshing idle timers
func (m *Manager) ForEach(fn func(*farm.Session)) {
	for _, s := range m.lru.Values() {
		fn(s)
	}
}

// Close evicts every session
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lru.Purge()
}
