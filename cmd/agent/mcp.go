package main

import (
	// Packages
	mcp "github.com/vedanth-p/Agentic-AI-playground/pkg/mcp"
	version "github.com/vedanth-p/Agentic-AI-playground/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type MCPCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

// Standard output carries the protocol, so logging goes to standard error
func (cmd *MCPCmd) Run(globals *Globals) error {
	toolkit, err := globals.Toolkit()
	if err != nil {
		return err
	}
	server, err := mcp.New(globals.execName, version.Version(), toolkit, mcp.WithLogger(globals.log))
	if err != nil {
		return err
	}
	globals.log.Infof("%s@%s serving MCP on stdio", globals.execName, version.Version())
	return server.RunStdio(globals.ctx)
}
