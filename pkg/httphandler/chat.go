package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	agent "github.com/vedanth-p/Agentic-AI-playground/pkg/agent"
	schema "github.com/vedanth-p/Agentic-AI-playground/pkg/schema"
	session "github.com/vedanth-p/Agentic-AI-playground/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatRequest is the body of POST /chat. A new session is created when
// no session is given.
type ChatRequest struct {
	Session string `json:"session,omitempty"`
	Text    string `json:"text"`
}

// ChatResponse is the response to POST /chat
type ChatResponse struct {
	Session string            `json:"session"`
	Agent   string            `json:"agent"`
	Text    string            `json:"text"`
	Result  schema.ResultType `json:"result"`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /chat
func ChatHandler(runner *agent.Runner, store session.Store) (string, func(http.ResponseWriter, *http.Request)) {
	return "/chat", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req ChatRequest
			if err := httprequest.Read(r, &req); err != nil {
				_ = httpresponse.Error(w, err)
				return
			}
			if req.Text == "" {
				_ = httpresponse.Error(w, httpErr(agentic.ErrBadParameter.With("text is required")))
				return
			}

			// Create a session if needed
			if req.Session == "" {
				s, err := store.Create(r.Context(), runner.Agent().Name, "", "")
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				req.Session = s.ID
			}

			// Run the turn
			response, err := runner.Run(r.Context(), req.Session, req.Text)
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), ChatResponse{
				Session: req.Session,
				Agent:   runner.Agent().Name,
				Text:    response.Text(),
				Result:  response.Result,
			})
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}
}
