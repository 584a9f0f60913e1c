// Package store keeps quiz sessions in memory. There is no persistence:
// sessions live for the duration of the process and expire after a TTL.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quizagent/quizagent-backend/internal/quiz"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Store is a mutex-guarded in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*quiz.Session
	ttl      time.Duration
}

// New creates a Store whose sessions expire after ttl of inactivity.
func New(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*quiz.Session),
		ttl:      ttl,
	}
}

// Create registers a fresh session and returns its snapshot.
func (st *Store) Create() quiz.View {
	s := quiz.NewSession(uuid.New().String())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s.View()
}

// With runs fn against the named session while holding its lock, so no
// two operations on one session ever run in parallel.
func (st *Store) With(id string, fn func(*quiz.Session) error) error {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	s.Lock()
	defer s.Unlock()
	return fn(s)
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartJanitor sweeps expired sessions until ctx is cancelled.
func (st *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.sweep()
		}
	}
}

func (st *Store) sweep() {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
