/*
session keeps conversation history for the agent runner, keyed by session
identifier and scoped to an application and user.
*/
package session

import (
	"context"
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Session is a conversation between a user and an agent
type Session struct {
	ID       string              `json:"id"`
	App      string              `json:"app"`
	User     string              `json:"user"`
	Messages schema.Conversation `json:"messages"`
	Created  time.Time           `json:"created"`
	Modified time.Time           `json:"modified"`
}

// Store persists sessions
type Store interface {
	// Create a session. When id is empty a new identifier is generated.
	Create(ctx context.Context, app, user, id string) (*Session, error)

	// Get returns a snapshot of a session
	Get(ctx context.Context, id string) (*Session, error)

	// List returns all sessions, most recently modified first
	List(ctx context.Context) ([]*Session, error)

	// Append adds messages to a session
	Append(ctx context.Context, id string, messages ...schema.Message) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Session) String() string {
	return types.Stringify(s)
}
