package nominatim

import (
	"fmt"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// SearchRequest defines the input for a free-text place search
type SearchRequest struct {
	Query    string `json:"query" jsonschema:"Free-text place name"`
	Limit    uint   `json:"limit,omitempty" jsonschema:"Maximum number of results"`
	Language string `json:"language,omitempty" jsonschema:"Preferred language for place names"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts SearchRequest to URL query parameters
func (r *SearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("q", r.Query)
	result.Set("format", "json")
	if r.Limit > 0 {
		result.Set("limit", fmt.Sprint(r.Limit))
	}
	if r.Language != "" {
		result.Set("accept-language", r.Language)
	}
	return result
}
