package google

import (
	// Packages
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a generation option
type Opt func(*opts) error

type opts struct {
	systemPrompt string
	temperature  *float64
	maxTokens    int
	toolkit      *tool.Toolkit
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	opts := new(opts)
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// See: https://ai.google.dev/gemini-api/docs/text-generation

// WithSystemPrompt sets the system instruction for the request.
//
// See: https://ai.google.dev/gemini-api/docs/system-instructions
func WithSystemPrompt(value string) Opt {
	return func(o *opts) error {
		o.systemPrompt = value
		return nil
	}
}

// WithTemperature sets the temperature for the request (0.0 to 2.0)
func WithTemperature(value float64) Opt {
	return func(o *opts) error {
		if value < 0 || value > 2 {
			return agentic.ErrBadParameter.With("temperature must be between 0.0 and 2.0")
		}
		o.temperature = &value
		return nil
	}
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1)
func WithMaxTokens(value uint) Opt {
	return func(o *opts) error {
		if value < 1 {
			return agentic.ErrBadParameter.With("max_tokens must be at least 1")
		}
		o.maxTokens = int(value)
		return nil
	}
}

// WithToolkit declares the tools of the toolkit as callable functions.
//
// See: https://ai.google.dev/gemini-api/docs/function-calling
func WithToolkit(tk *tool.Toolkit) Opt {
	return func(o *opts) error {
		o.toolkit = tk
		return nil
	}
}
