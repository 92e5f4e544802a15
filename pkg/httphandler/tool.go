package httphandler

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolMeta describes a tool and its input
type ToolMeta struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Input       *jsonschema.Schema `json:"input,omitempty"`
}

// ListToolResponse is the response to GET /tool
type ListToolResponse struct {
	Count uint       `json:"count"`
	Body  []ToolMeta `json:"body"`
}

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /tool
func ToolListHandler(toolkit *tool.Toolkit) (string, func(http.ResponseWriter, *http.Request)) {
	return "/tool", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			tools := toolkit.Tools()
			resp := ListToolResponse{Count: uint(len(tools)), Body: make([]ToolMeta, 0, len(tools))}
			for _, t := range tools {
				meta, err := toolMeta(t)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				resp.Body = append(resp.Body, meta)
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}
}

// Path: /tool/{name}
func ToolHandler(toolkit *tool.Toolkit) (string, func(http.ResponseWriter, *http.Request)) {
	return "/tool/{name}", func(w http.ResponseWriter, r *http.Request) {
		t := toolkit.Lookup(r.PathValue("name"))
		if t == nil {
			_ = httpresponse.Error(w, httpErr(agentic.ErrNotFound.Withf("tool %q", r.PathValue("name"))))
			return
		}
		switch r.Method {
		case http.MethodGet:
			meta, err := toolMeta(t)
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), meta)
		case http.MethodPost:
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
			if err != nil {
				_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
				return
			}
			if len(body) > 0 && !json.Valid(body) {
				_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With("body is not valid JSON"))
				return
			}
			result, err := toolkit.Run(r.Context(), t.Name(), json.RawMessage(body))
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), result)
		default:
			_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func toolMeta(t tool.Tool) (ToolMeta, error) {
	s, err := t.Schema()
	if err != nil {
		return ToolMeta{}, agentic.ErrInternalServerError.Withf("%s: %v", t.Name(), err)
	}
	return ToolMeta{
		Name:        t.Name(),
		Description: t.Description(),
		Input:       s,
	}, nil
}
