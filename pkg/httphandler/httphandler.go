/*
httphandler exposes the toolkit, the sessions and the agent runner over HTTP
as JSON endpoints.
*/
package httphandler

import (
	"errors"
	"net/http"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	agent "github.com/vedanth-p/Agentic-AI-playground/pkg/agent"
	session "github.com/vedanth-p/Agentic-AI-playground/pkg/session"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router registers handlers, and is satisfied by *http.ServeMux
type Router interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Maximum size of a request body
	maxBodySize = 1 << 20
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// RegisterToolHandlers registers the tool endpoints
func RegisterToolHandlers(router Router, toolkit *tool.Toolkit) {
	router.HandleFunc(ToolListHandler(toolkit))
	router.HandleFunc(ToolHandler(toolkit))
}

// RegisterAgentHandlers registers the session and chat endpoints
func RegisterAgentHandlers(router Router, runner *agent.Runner, store session.Store) {
	router.HandleFunc(SessionListHandler(store))
	router.HandleFunc(SessionHandler(store))
	router.HandleFunc(ChatHandler(runner, store))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts an agentic.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var code agentic.Err
	if !errors.As(err, &code) {
		return httpresponse.ErrInternalError.With(err)
	}
	switch code {
	case agentic.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case agentic.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case agentic.ErrConflict:
		return httpresponse.ErrConflict.With(err)
	case agentic.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
