package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	session "github.com/vedanth-p/Agentic-AI-playground/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CreateSessionRequest is the body of POST /session
type CreateSessionRequest struct {
	ID   string `json:"id,omitempty"`
	App  string `json:"app,omitempty"`
	User string `json:"user,omitempty"`
}

// ListSessionResponse is the response to GET /session
type ListSessionResponse struct {
	Count uint               `json:"count"`
	Body  []*session.Session `json:"body"`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /session
func SessionListHandler(store session.Store) (string, func(http.ResponseWriter, *http.Request)) {
	return "/session", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			sessions, err := store.List(r.Context())
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), ListSessionResponse{
				Count: uint(len(sessions)),
				Body:  sessions,
			})
		case http.MethodPost:
			var req CreateSessionRequest
			if err := httprequest.Read(r, &req); err != nil {
				_ = httpresponse.Error(w, err)
				return
			}
			s, err := store.Create(r.Context(), req.App, req.User, req.ID)
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusCreated, httprequest.Indent(r), s)
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}
}

// Path: /session/{session}
func SessionHandler(store session.Store) (string, func(http.ResponseWriter, *http.Request)) {
	return "/session/{session}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("session")
		switch r.Method {
		case http.MethodGet:
			s, err := store.Get(r.Context(), id)
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), s)
		case http.MethodDelete:
			if err := store.Delete(r.Context(), id); err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}
}
