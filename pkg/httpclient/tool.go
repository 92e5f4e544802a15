package httpclient

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	httphandler "github.com/vedanth-p/Agentic-AI-playground/pkg/httphandler"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListTools returns all the tools, ordered by name
func (c *Client) ListTools(ctx context.Context) (*httphandler.ListToolResponse, error) {
	var response httphandler.ListToolResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("tool")); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetTool returns a tool and its input schema
func (c *Client) GetTool(ctx context.Context, name string) (*httphandler.ToolMeta, error) {
	if name == "" {
		return nil, agentic.ErrBadParameter.With("tool name cannot be empty")
	}
	var response httphandler.ToolMeta
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("tool", name)); err != nil {
		return nil, err
	}
	return &response, nil
}

// RunTool runs a tool with the given input, which is marshalled to JSON,
// and returns the raw JSON result
func (c *Client) RunTool(ctx context.Context, name string, input any) (json.RawMessage, error) {
	if name == "" {
		return nil, agentic.ErrBadParameter.With("tool name cannot be empty")
	}
	if input == nil {
		input = struct{}{}
	}
	req, err := client.NewJSONRequest(input)
	if err != nil {
		return nil, err
	}
	var response json.RawMessage
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("tool", name)); err != nil {
		return nil, err
	}
	return response, nil
}
