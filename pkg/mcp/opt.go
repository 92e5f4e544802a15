package mcp

import (
	// Packages
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

///////////////////////////////////////////////////////////////////////
// TYPES

// Opt is an option which can be applied to a Server
type Opt func(*Server) error

///////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger for tool calls
func WithLogger(log logrus.FieldLogger) Opt {
	return func(s *Server) error {
		if log == nil {
			return agentic.ErrBadParameter.With("logger cannot be nil")
		}
		s.log = log
		return nil
	}
}
