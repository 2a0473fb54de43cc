package chat

import (
	"context"
	"sync"
)

// MemoryStore is the default single-process session store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return sess.clone(), nil
}

// Reset implements Store.
func (s *MemoryStore) Reset(_ context.Context, id, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = newSession(lang)
	return nil
}

// AppendTurn implements Store.
func (s *MemoryStore) AppendTurn(_ context.Context, id, role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNoSession
	}
	sess.Transcript = append(sess.Transcript, Turn{Role: role, Content: content})
	return nil
}

// DropLastTurn implements Store.
func (s *MemoryStore) DropLastTurn(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNoSession
	}
	if len(sess.Transcript) > 1 {
		sess.Transcript = sess.Transcript[:len(sess.Transcript)-1]
	}
	return nil
}

// AppendItems implements Store.
func (s *MemoryStore) AppendItems(_ context.Context, id string, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNoSession
	}
	sess.Items = append(sess.Items, items...)
	return nil
}

// TrimTranscript implements Store.
func (s *MemoryStore) TrimTranscript(_ context.Context, id string, max int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNoSession
	}
	trimTranscript(sess, max)
	return nil
}
