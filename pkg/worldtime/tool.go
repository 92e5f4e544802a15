package worldtime

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request defines the input for the time tool
type Request struct {
	City string `json:"city" jsonschema:"The name of the city, for example New York"`
}

type currentTime struct {
	clock *Clock
}

var _ tool.Tool = (*currentTime)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool returns the time tool backed by the given clock, or the system
// clock when nil
func NewTool(clock *Clock) tool.Tool {
	if clock == nil {
		clock = New()
	}
	return &currentTime{clock: clock}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (*currentTime) Name() string {
	return "get_current_time"
}

func (*currentTime) Description() string {
	return "Returns the current time in a specified city."
}

func (*currentTime) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Request](nil)
}

func (c *currentTime) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req Request
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, agentic.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.City == "" {
		return nil, agentic.ErrBadParameter.With("city is required")
	}
	return c.clock.Lookup(req.City), nil
}
