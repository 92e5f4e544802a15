package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	httphandler "github.com/vedanth-p/Agentic-AI-playground/pkg/httphandler"
	session "github.com/vedanth-p/Agentic-AI-playground/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListSessions returns all sessions, most recently modified first
func (c *Client) ListSessions(ctx context.Context) (*httphandler.ListSessionResponse, error) {
	var response httphandler.ListSessionResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("session")); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetSession returns a session and its history
func (c *Client) GetSession(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, agentic.ErrBadParameter.With("session ID cannot be empty")
	}
	var response session.Session
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("session", id)); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateSession creates a new session. An empty identifier is generated by
// the server.
func (c *Client) CreateSession(ctx context.Context, meta httphandler.CreateSessionRequest) (*session.Session, error) {
	req, err := client.NewJSONRequest(meta)
	if err != nil {
		return nil, err
	}
	var response session.Session
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("session")); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteSession deletes a session
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return agentic.ErrBadParameter.With("session ID cannot be empty")
	}
	return c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("session", id))
}
