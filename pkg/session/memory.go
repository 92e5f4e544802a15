package session

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	types "github.com/mutablelogic/go-server/pkg/types"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MemoryStore is an in-memory implementation of Store.
// It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

var _ Store = (*MemoryStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryStore creates a new empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Create creates a new session and returns a snapshot of it
func (m *MemoryStore) Create(_ context.Context, app, user, id string) (*Session, error) {
	if id == "" {
		id = uuid.New().String()
	} else if !types.IsIdentifier(id) {
		if _, err := uuid.Parse(id); err != nil {
			return nil, agentic.ErrBadParameter.Withf("invalid session id: %q", id)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[id]; exists {
		return nil, agentic.ErrConflict.Withf("session %q", id)
	}

	now := time.Now()
	s := &Session{
		ID:       id,
		App:      app,
		User:     user,
		Messages: make(schema.Conversation, 0),
		Created:  now,
		Modified: now,
	}
	m.sessions[id] = s

	return s.copy(), nil
}

// Get returns a snapshot of a session by identifier
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[id]
	if !exists {
		return nil, agentic.ErrNotFound.Withf("session %q", id)
	}
	return s.copy(), nil
}

// List returns all sessions, ordered by last modified time (most recent first)
func (m *MemoryStore) List(_ context.Context) ([]*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, s.copy())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Modified.After(result[j].Modified)
	})
	return result, nil
}

// Append adds messages to the end of a session
func (m *MemoryStore) Append(_ context.Context, id string, messages ...schema.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.sessions[id]
	if !exists {
		return agentic.ErrNotFound.Withf("session %q", id)
	}
	for _, message := range messages {
		s.Messages.Append(message)
	}
	s.Modified = time.Now()
	return nil
}

// Delete removes a session by identifier
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return agentic.ErrNotFound.Withf("session %q", id)
	}
	delete(m.sessions, id)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// copy returns the session with its own message slice. Messages themselves
// are never modified after they are appended.
func (s *Session) copy() *Session {
	c := *s
	c.Messages = slices.Clone(s.Messages)
	return &c
}
