package agent

import (
	"context"
	"sync"

	// Packages
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	google "github.com/vedanth-p/Agentic-AI-playground/pkg/provider/google"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
	session "github.com/vedanth-p/Agentic-AI-playground/pkg/session"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator returns the next assistant message for a conversation
type Generator interface {
	Generate(ctx context.Context, model string, conversation *schema.Conversation, opts ...google.Opt) (*schema.Message, error)
}

// Runner runs conversation turns for an agent, keeping history in a
// session store
type Runner struct {
	agent         *Agent
	generator     Generator
	store         session.Store
	maxIterations uint
	log           logrus.FieldLogger
	onTool        func(name string, input []byte)
	tracer        trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/vedanth-p/Agentic-AI-playground/pkg/agent"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRunner returns a runner for an agent
func NewRunner(agent *Agent, generator Generator, store session.Store, opt ...RunnerOpt) (*Runner, error) {
	if agent == nil || generator == nil || store == nil {
		return nil, agentic.ErrBadParameter.With("agent, generator and store are required")
	}
	r := &Runner{
		agent:         agent,
		generator:     generator,
		store:         store,
		maxIterations: DefaultMaxIterations,
		log:           logrus.StandardLogger(),
		tracer:        otel.Tracer(tracerName),
	}
	for _, fn := range opt {
		if err := fn(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Agent returns the agent definition
func (r *Runner) Agent() *Agent {
	return r.agent
}

// Run sends a user message within a session and returns the final response.
// The turn is only stored when the model stops asking for tools; when the
// iteration limit is reached the response has result ResultMaxIterations and
// the session is left unchanged.
func (r *Runner) Run(ctx context.Context, sessionId, text string) (*schema.Message, error) {
	ctx, span := r.tracer.Start(ctx, "agent.Run", trace.WithAttributes(
		attribute.String("agent", r.agent.Name),
		attribute.String("session", sessionId),
	))
	defer span.End()

	response, err := r.run(ctx, sessionId, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("result", response.Result.String()))
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *Runner) run(ctx context.Context, sessionId, text string) (*schema.Message, error) {
	if text == "" {
		return nil, agentic.ErrBadParameter.With("message is empty")
	}

	// Obtain the history
	s, err := r.store.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	conversation := s.Messages
	start := len(conversation)
	conversation.Append(*schema.NewMessage(schema.RoleUser, text))

	opts := []google.Opt{google.WithToolkit(r.agent.Toolkit)}
	if r.agent.Instruction != "" {
		opts = append(opts, google.WithSystemPrompt(r.agent.Instruction))
	}

	// Generate, running tools until the model answers
	result, err := r.generator.Generate(ctx, r.agent.Model, &conversation, opts...)
	if err != nil {
		return nil, err
	}
	conversation.Append(*result)
	for i := uint(0); i < r.maxIterations && result.Result == schema.ResultToolCall; i++ {
		calls := result.ToolCalls()
		if len(calls) == 0 {
			break
		}
		conversation.Append(schema.Message{
			Role:    schema.RoleUser,
			Content: r.runTools(ctx, calls),
		})
		if result, err = r.generator.Generate(ctx, r.agent.Model, &conversation, opts...); err != nil {
			return nil, err
		}
		conversation.Append(*result)
	}

	// Model still wants tools
	if result.Result == schema.ResultToolCall {
		r.log.WithField("session", sessionId).Warn("tool loop exhausted")
		result.Result = schema.ResultMaxIterations
		return result, nil
	}

	// Persist the turn
	turn := make([]schema.Message, 0, len(conversation)-start)
	for _, message := range conversation[start:] {
		turn = append(turn, *message)
	}
	if err := r.store.Append(ctx, sessionId, turn...); err != nil {
		return nil, err
	}

	return result, nil
}

// runTools executes tool calls in parallel and returns the results in call
// order. Tool failures are returned to the model as error results.
func (r *Runner) runTools(ctx context.Context, calls []schema.ToolCall) []schema.ContentBlock {
	results := make([]schema.ContentBlock, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		if r.onTool != nil {
			r.onTool(call.Name, call.Input)
		}
		wg.Add(1)
		go func(i int, call schema.ToolCall) {
			defer wg.Done()
			log := r.log.WithField("tool", call.Name)
			if call.Error != "" {
				log.WithField("error", call.Error).Warn("tool call not run")
				results[i] = schema.NewToolError(call.ID, call.Name, agentic.ErrBadParameter.With(call.Error))
				return
			}
			output, err := r.agent.Toolkit.Run(ctx, call.Name, call.Input)
			if err != nil {
				log.WithError(err).Warn("tool call failed")
				results[i] = schema.NewToolError(call.ID, call.Name, err)
			} else {
				log.Debug("tool call")
				results[i] = schema.NewToolResult(call.ID, call.Name, output)
			}
		}(i, call)
	}
	wg.Wait()
	return results
}
