package agent

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// AgentOpt changes the agent definition
type AgentOpt func(*Agent) error

// RunnerOpt changes the behaviour of the runner
type RunnerOpt func(*Runner) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultMaxIterations bounds the number of tool round-trips per turn
	DefaultMaxIterations = 8
)

///////////////////////////////////////////////////////////////////////////////
// AGENT OPTIONS

// WithName sets the agent name, which must be an identifier
func WithName(name string) AgentOpt {
	return func(a *Agent) error {
		if !types.IsIdentifier(name) {
			return agentic.ErrBadParameter.Withf("invalid agent name: %q", name)
		}
		a.Name = name
		return nil
	}
}

// WithModel sets the model used by the agent
func WithModel(model string) AgentOpt {
	return func(a *Agent) error {
		if model == "" {
			return agentic.ErrBadParameter.With("model is required")
		}
		a.Model = model
		return nil
	}
}

func WithDescription(description string) AgentOpt {
	return func(a *Agent) error {
		a.Description = description
		return nil
	}
}

// WithInstruction sets the system instruction
func WithInstruction(instruction string) AgentOpt {
	return func(a *Agent) error {
		a.Instruction = instruction
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// RUNNER OPTIONS

// WithMaxIterations sets the number of tool round-trips allowed per turn
func WithMaxIterations(n uint) RunnerOpt {
	return func(r *Runner) error {
		if n == 0 {
			return agentic.ErrBadParameter.With("max iterations must be at least 1")
		}
		r.maxIterations = n
		return nil
	}
}

// WithLogger sets the logger for tool calls
func WithLogger(log logrus.FieldLogger) RunnerOpt {
	return func(r *Runner) error {
		if log == nil {
			return agentic.ErrBadParameter.With("logger cannot be nil")
		}
		r.log = log
		return nil
	}
}

// WithToolCallback sets a function called before each tool call runs
func WithToolCallback(fn func(name string, input []byte)) RunnerOpt {
	return func(r *Runner) error {
		r.onTool = fn
		return nil
	}
}
