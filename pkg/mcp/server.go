/*
mcp serves a toolkit to Model Context Protocol clients, over standard
input and output or streamable HTTP.
*/
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	// Packages
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////
// TYPES

// Server exposes the tools of a toolkit as MCP tools
type Server struct {
	server  *sdk.Server
	toolkit *tool.Toolkit
	log     logrus.FieldLogger
}

///////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a server with the given name and version, exposing every
// tool in the toolkit
func New(name, version string, toolkit *tool.Toolkit, opt ...Opt) (*Server, error) {
	if toolkit == nil {
		return nil, agentic.ErrBadParameter.With("toolkit is required")
	}
	self := &Server{
		server:  sdk.NewServer(&sdk.Implementation{Name: name, Version: version}, nil),
		toolkit: toolkit,
		log:     logrus.StandardLogger(),
	}
	for _, fn := range opt {
		if err := fn(self); err != nil {
			return nil, err
		}
	}

	// Register the tools
	for _, t := range toolkit.Tools() {
		schema, err := t.Schema()
		if err != nil {
			return nil, agentic.ErrInternalServerError.Withf("%s: %v", t.Name(), err)
		}
		self.server.AddTool(&sdk.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: schema,
		}, self.handler(t.Name()))
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RunStdio serves a single client over standard input and output until
// the context is done or the client disconnects
func (server *Server) RunStdio(ctx context.Context) error {
	return server.server.Run(ctx, &sdk.StdioTransport{})
}

// Connect serves a single client over the given transport
func (server *Server) Connect(ctx context.Context, transport sdk.Transport) (*sdk.ServerSession, error) {
	return server.server.Connect(ctx, transport, nil)
}

// Handler returns a streamable HTTP handler for the server
func (server *Server) Handler() http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server.server
	}, nil)
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// handler runs a tool through the toolkit, so input is validated against
// the tool schema. Errors and error results are returned to the client as
// tool errors rather than protocol errors.
func (server *Server) handler(name string) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		var input json.RawMessage
		if req.Params != nil {
			input = req.Params.Arguments
		}
		log := server.log.WithField("tool", name)

		output, err := server.toolkit.Run(ctx, name, input)
		if err != nil {
			log.WithError(err).Warn("mcp tool call failed")
			return textResult(err.Error(), true), nil
		}
		log.Debug("mcp tool call")

		// Strings are returned as-is, anything else as JSON
		if text, ok := output.(string); ok {
			return textResult(text, false), nil
		}
		data, err := json.Marshal(output)
		if err != nil {
			return nil, err
		}
		result, ok := output.(tool.Result)
		return textResult(string(data), ok && !result.OK()), nil
	}
}

func textResult(text string, isError bool) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: text}},
		IsError: isError,
	}
}
