package tool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// EchoRequest is the input for the echo tool
type EchoRequest struct {
	Text string `json:"text" jsonschema:"Text to echo back"`
}

type echo struct{}

var _ Tool = (*echo)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewEcho returns a tool which echoes the user input back
func NewEcho() Tool {
	return &echo{}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (*echo) Name() string {
	return "echo"
}

func (*echo) Description() string {
	return "Echoes the user input back."
}

func (*echo) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[EchoRequest](nil)
}

func (*echo) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req EchoRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, agentic.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return "Echo: " + req.Text, nil
}
