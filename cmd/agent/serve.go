package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	// Packages
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/vedanth-p/Agentic-AI-playground/pkg/httphandler"
	mcp "github.com/vedanth-p/Agentic-AI-playground/pkg/mcp"
	version "github.com/vedanth-p/Agentic-AI-playground/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCmd struct {
	Addr string `name:"addr" env:"AGENT_ADDR" default:"localhost:8080" help:"Address to listen on"`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCmd) Run(globals *Globals) error {
	// Create the TLS config if TLS options are provided
	tlsConfig, err := cmd.tlsConfig()
	if err != nil {
		return err
	}

	// Create the server
	server, err := httpserver.New(cmd.Addr, tlsConfig)
	if err != nil {
		return err
	}

	// Register handlers with the server router
	if err := cmd.register(globals, server.Router()); err != nil {
		return err
	}

	// Run the server until the context is cancelled
	globals.log.Infof("%s@%s started on %s", globals.execName, version.Version(), server.Addr())
	if err := server.Run(globals.ctx); err != nil {
		return err
	}
	globals.log.Infof("%s@%s stopped", globals.execName, version.Version())
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// register adds the tool, MCP and agent handlers to the router. The agent
// handlers need an API key.
func (cmd *ServeCmd) register(globals *Globals, router *http.ServeMux) error {
	toolkit, err := globals.Toolkit()
	if err != nil {
		return err
	}
	httphandler.RegisterToolHandlers(router, toolkit)

	// Tools over MCP
	mcpServer, err := mcp.New(globals.execName, version.Version(), toolkit, mcp.WithLogger(globals.log))
	if err != nil {
		return err
	}
	router.Handle("/mcp", mcpServer.Handler())

	// Agent and sessions
	if globals.GeminiAPIKey == "" {
		globals.log.Warn("no API key configured, serving tools only")
		return nil
	}
	runner, store, err := globals.Runner()
	if err != nil {
		return err
	}
	httphandler.RegisterAgentHandlers(router, runner, store)
	return nil
}

func (cmd *ServeCmd) tlsConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		pemData = append(pemData, data)
	}
	config, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return config, nil
}
