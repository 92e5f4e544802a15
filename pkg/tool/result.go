package tool

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Status is the outcome of a tool call as seen by the agent runtime
type Status string

// Result is the uniform outcome of a tool call. Exactly one of the report
// or error message is set, and it is never empty.
type Result struct {
	status Status
	text   string
}

type resultJSON struct {
	Status  Status `json:"status"`
	Report  string `json:"report,omitempty"`
	Message string `json:"error_message,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	emptyReport  = "tool returned an empty report"
	emptyMessage = "unknown error"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Success returns a successful result with the given report. An empty
// report is turned into an error result.
func Success(report string) Result {
	if report == "" {
		return Failure(emptyReport)
	}
	return Result{status: StatusSuccess, text: report}
}

// Failure returns an error result with the given message
func Failure(message string) Result {
	if message == "" {
		message = emptyMessage
	}
	return Result{status: StatusError, text: message}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Result) MarshalJSON() ([]byte, error) {
	j := resultJSON{Status: r.Status()}
	if r.OK() {
		j.Report = r.text
	} else {
		j.Message = r.Message()
	}
	return json.Marshal(j)
}

func (r Result) String() string {
	if r.OK() {
		return r.text
	}
	return "error: " + r.Message()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Status returns the status of the result; the zero value is an error
func (r Result) Status() Status {
	if r.status == StatusSuccess {
		return StatusSuccess
	}
	return StatusError
}

// OK returns true for a successful result
func (r Result) OK() bool {
	return r.status == StatusSuccess
}

// Report returns the report for a successful result, or empty string
func (r Result) Report() string {
	if r.OK() {
		return r.text
	}
	return ""
}

// Message returns the error message for an error result, or empty string
func (r Result) Message() string {
	if r.OK() {
		return ""
	}
	if r.text == "" {
		return emptyMessage
	}
	return r.text
}
