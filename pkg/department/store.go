package department

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound indicates no persisted selection exists for the user.
var ErrNotFound = errors.New("department: no persisted selection")

// Store is the persisted user -> last-department map. Entries are written
// only after a committed successful switch and read once at initialization.
type Store interface {
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Set(ctx context.Context, userID uuid.UUID, departmentID string) error
}

// InMemoryStore keeps selections in process memory. Used in tests and as the
// default driver for single-instance deployments.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[uuid.UUID]string)}
}

func (s *InMemoryStore) Get(_ context.Context, userID uuid.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.entries[userID]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

func (s *InMemoryStore) Set(_ context.Context, userID uuid.UUID, departmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = departmentID
	return nil
}
