/*
agent describes a tool-using assistant and runs conversations with it: each
user turn is sent to the model, requested tool calls are executed through the
toolkit and their results returned to the model until it answers in text.
*/
package agent

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	google "github.com/vedanth-p/Agentic-AI-playground/pkg/provider/google"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent is a named model configuration with instructions and tools
type Agent struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
	Model       string        `json:"model"`
	Toolkit     *tool.Toolkit `json:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultName        = "weather_time_agent"
	DefaultDescription = "Agent to answer simple questions about time and weather in a city."
	DefaultInstruction = "You are a helpful agent who can answer user questions about the time and weather in a city."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an agent with the given tools and the weather and time
// defaults, which can be changed with options
func New(toolkit *tool.Toolkit, opt ...AgentOpt) (*Agent, error) {
	if toolkit == nil {
		return nil, agentic.ErrBadParameter.With("toolkit is required")
	}
	a := &Agent{
		Name:        DefaultName,
		Description: DefaultDescription,
		Instruction: DefaultInstruction,
		Model:       google.DefaultModel,
		Toolkit:     toolkit,
	}
	for _, fn := range opt {
		if err := fn(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a Agent) String() string {
	return types.Stringify(a)
}
