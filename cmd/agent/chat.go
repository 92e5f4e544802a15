package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	// Packages
	agent "github.com/vedanth-p/Agentic-AI-playground/pkg/agent"
	httpclient "github.com/vedanth-p/Agentic-AI-playground/pkg/httpclient"
	httphandler "github.com/vedanth-p/Agentic-AI-playground/pkg/httphandler"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
	markdown "github.com/vedanth-p/Agentic-AI-playground/pkg/ui/markdown"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	User    string `name:"user" default:"user_1" help:"User identifier for the session"`
	Session string `name:"session" help:"Session identifier, generated when empty"`
	Url     string `name:"url" env:"AGENT_URL" help:"Chat with an agent served at this URL instead of running it locally"`
	Plain   bool   `name:"plain" help:"Do not render responses as markdown"`
}

// turnFunc sends one user message and returns the agent response
type turnFunc func(ctx context.Context, text string) (string, schema.ResultType, error)

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(globals *Globals) error {
	var turn turnFunc
	var name, model string
	if cmd.Url != "" {
		fn, err := cmd.remote(globals)
		if err != nil {
			return err
		}
		turn, name, model = fn, cmd.Url, "remote"
	} else {
		fn, a, err := cmd.local(globals)
		if err != nil {
			return err
		}
		turn, name, model = fn, a.Name, a.Model
	}

	// Only prompt and render when attached to a terminal
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	var renderer *markdown.Renderer
	if interactive {
		if !cmd.Plain {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				width = 80
			}
			if renderer, err = markdown.New(width); err != nil {
				globals.log.WithError(err).Debug("markdown disabled")
			}
		}
		fmt.Printf("Agent '%s' created using model '%s'. Type 'exit' to quit.\n", name, model)
	}

	// Continue looping until end of input
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("You: ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		// Ignore empty input
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		} else if strings.EqualFold(input, "exit") {
			return nil
		}

		// Feed input into the agent
		text, result, err := turn(globals.ctx, input)
		if err != nil {
			if globals.ctx.Err() != nil {
				return nil
			}
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		switch result {
		case schema.ResultMaxIterations:
			fmt.Println("Agent: (gave up after too many tool calls)")
		default:
			fmt.Println("Agent:", renderer.Render(text))
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// local runs the agent in-process with a new session
func (cmd *ChatCmd) local(globals *Globals) (turnFunc, *agent.Agent, error) {
	runner, store, err := globals.Runner(agent.WithToolCallback(func(name string, input []byte) {
		fmt.Fprintf(os.Stderr, "--- Tool: %s called with %s ---\n", name, input)
	}))
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Create(globals.ctx, runner.Agent().Name, cmd.User, cmd.Session)
	if err != nil {
		return nil, nil, err
	}
	globals.log.WithField("session", s.ID).Debug("session created")

	return func(ctx context.Context, text string) (string, schema.ResultType, error) {
		response, err := runner.Run(ctx, s.ID, text)
		if err != nil {
			return "", schema.ResultError, err
		}
		return response.Text(), response.Result, nil
	}, runner.Agent(), nil
}

// remote sends each turn to a served agent, continuing the session the
// server returns
func (cmd *ChatCmd) remote(globals *Globals) (turnFunc, error) {
	client, err := httpclient.New(cmd.Url, globals.agentClientOpts()...)
	if err != nil {
		return nil, err
	}
	session := cmd.Session
	return func(ctx context.Context, text string) (string, schema.ResultType, error) {
		response, err := client.Chat(ctx, httphandler.ChatRequest{Session: session, Text: text})
		if err != nil {
			return "", schema.ResultError, err
		}
		session = response.Session
		return response.Text, response.Result, nil
	}, nil
}
