/*
google implements a client for the Google Gemini generateContent REST API,
with function calling driven by a toolkit.
https://ai.google.dev/gemini-api/docs
*/
package google

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when no model is named
	DefaultModel = "gemini-2.5-flash"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Gemini API client with the given API key. The endpoint
// can be overridden with client.OptEndpoint.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if apiKey == "" {
		return nil, agentic.ErrBadParameter.With("api key is required")
	}
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("x-goog-api-key", apiKey),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}
