// Package store keeps graded attempts in memory for the lifetime of the
// process. Attempts are session-scoped values; there is deliberately no
// persistence behind this store.
package store

import (
	"sync"
	"time"

	"github.com/quizcert/quizcert/internal/envinfo"
	"github.com/quizcert/quizcert/internal/grade"
)

// Attempt is a stored, graded attempt.
type Attempt struct {
	ID        string
	Candidate grade.Candidate
	Result    *grade.Result
	Details   *envinfo.Details
	CreatedAt time.Time
}

// AttemptStore is a mutex-guarded in-memory attempt map.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts map[string]Attempt
}

// NewAttemptStore creates an empty store.
func NewAttemptStore() *AttemptStore {
	return &AttemptStore{attempts: make(map[string]Attempt)}
}

// Put stores an attempt keyed by its id.
func (s *AttemptStore) Put(a Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[a.ID] = a
}

// Get returns the attempt with the given id, if present.
func (s *AttemptStore) Get(id string) (Attempt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attempts[id]
	return a, ok
}

// Len returns the number of stored attempts.
func (s *AttemptStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.attempts)
}
