package nominatim

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: SearchRequest

func Test_SearchRequest_Values(t *testing.T) {
	tests := []struct {
		name   string
		req    *SearchRequest
		expect url.Values
	}{
		{
			name: "minimal request",
			req:  &SearchRequest{Query: "London"},
			expect: url.Values{
				"q":      []string{"London"},
				"format": []string{"json"},
			},
		},
		{
			name: "single result",
			req:  &SearchRequest{Query: "Berlin", Limit: 1},
			expect: url.Values{
				"q":      []string{"Berlin"},
				"format": []string{"json"},
				"limit":  []string{"1"},
			},
		},
		{
			name: "with language",
			req:  &SearchRequest{Query: "München", Limit: 5, Language: "de"},
			expect: url.Values{
				"q":               []string{"München"},
				"format":          []string{"json"},
				"limit":           []string{"5"},
				"accept-language": []string{"de"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Values()
			assert.Equal(t, tt.expect, got)
		})
	}
}

func Test_Location_ShortName(t *testing.T) {
	tests := []struct {
		display string
		expect  string
	}{
		{"Berlin, Germany", "Berlin"},
		{"Kolkata", "Kolkata"},
		{"New York, United States", "New York"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			assert.Equal(t, tt.expect, Location{DisplayName: tt.display}.ShortName())
		})
	}
}
