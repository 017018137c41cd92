package identity

import (
	"sync"

	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Persister keeps the current actor id across reloads under one fixed key.
// The HTTP implementation is a signed session cookie.
type Persister interface {
	Save(actorID string) error
	Load() (actorID string, ok bool)
	Clear() error
}

// Session is one client's view of the identity store: an optional current
// actor, set on login, cleared on logout and restored from the persister.
type Session struct {
	mu      sync.Mutex
	store   *Store
	persist Persister
	current *models.Actor
	log     *zap.Logger
}

// NewSession binds a persister to the store. Call Restore to pick up a
// previously persisted actor.
func NewSession(store *Store, persist Persister, logger *zap.Logger) *Session {
	return &Session{store: store, persist: persist, log: logger}
}

// Restore loads the persisted actor. A persisted id that no longer names
// an actor is cleared.
func (s *Session) Restore() (models.Actor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.persist.Load()
	if !ok {
		s.current = nil
		return models.Actor{}, false
	}
	a, found := s.store.Lookup(id)
	if !found {
		s.log.Warn("persisted actor no longer exists", zap.String("actor_id", id))
		if err := s.persist.Clear(); err != nil {
			s.log.Error("clear stale session", zap.Error(err))
		}
		s.current = nil
		return models.Actor{}, false
	}
	s.current = &a
	return a, true
}

// Login authenticates and, on success, makes the actor current and
// persists it. On failure the current actor is left unset.
func (s *Session) Login(email, password string) (models.Actor, error) {
	a, err := s.store.Authenticate(email, password)
	if err != nil {
		return models.Actor{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist.Save(a.ID); err != nil {
		return models.Actor{}, err
	}
	s.current = &a
	return a, nil
}

// RegisterCompany registers a company. Registration does not sign the
// company in; it still has to be approved.
func (s *Session) RegisterCompany(reg Registration) (models.Actor, error) {
	return s.store.RegisterCompany(reg)
}

// Logout clears the current actor and the persisted entry.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return s.persist.Clear()
}

// Current returns the signed-in actor, or nil.
func (s *Session) Current() *models.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	a := s.current.Clone()
	return &a
}

// MemoryPersister is a Persister for tests and non-HTTP clients.
type MemoryPersister struct {
	mu sync.Mutex
	id string
}

func (m *MemoryPersister) Save(actorID string) error {
	m.mu.Lock()
	m.id = actorID
	m.mu.Unlock()
	return nil
}

func (m *MemoryPersister) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.id != ""
}

func (m *MemoryPersister) Clear() error {
	m.mu.Lock()
	m.id = ""
	m.mu.Unlock()
	return nil
}
