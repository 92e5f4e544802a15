package schema

import (
	"encoding/json"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ResultType is the reason the model stopped generating a message
type ResultType uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ResultStop      ResultType = iota // Normal completion
	ResultMaxTokens                   // Truncated
	ResultBlocked                     // Blocked by a content filter
	ResultToolCall                    // Model requested one or more tool calls
	ResultError                       // Malformed or unexpected tool call
	ResultOther                       // Anything else
	ResultMaxIterations               // Tool loop exhausted
)

var resultNames = map[ResultType]string{
	ResultStop:      "stop",
	ResultMaxTokens: "max_tokens",
	ResultBlocked:   "blocked",
	ResultToolCall:  "tool_call",
	ResultError:     "error",
	ResultOther:     "other",

	ResultMaxIterations: "max_iterations",
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ResultType) String() string {
	if name, exists := resultNames[r]; exists {
		return name
	}
	return "unknown"
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r ResultType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ResultType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for k, v := range resultNames {
		if v == s {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("unknown result type: %q", s)
}
