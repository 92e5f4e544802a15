package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	httphandler "github.com/vedanth-p/Agentic-AI-playground/pkg/httphandler"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat sends a message to the agent. When req.Session is empty the server
// creates a session, which is returned in the response for the next turn.
func (c *Client) Chat(ctx context.Context, req httphandler.ChatRequest) (*httphandler.ChatResponse, error) {
	if req.Text == "" {
		return nil, agentic.ErrBadParameter.With("text cannot be empty")
	}
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}
	var response httphandler.ChatResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat")); err != nil {
		return nil, err
	}
	return &response, nil
}
