/*
nominatim implements a place-search client for the OpenStreetMap Nominatim API
https://nominatim.org/release-docs/latest/api/Search/
*/
package nominatim

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://nominatim.openstreetmap.org"

	// Nominatim requires an identifying user agent
	DefaultUserAgent = "WeatherApp/1.0"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. The default endpoint and user agent can be
// overridden with client.OptEndpoint and client.OptUserAgent.
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptUserAgent(DefaultUserAgent),
	}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Search returns the places matching the request, in the order ranked by
// the service
func (c *Client) Search(ctx context.Context, req *SearchRequest) ([]Location, error) {
	var response []Location

	// Request -> Response
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("search"), client.OptQuery(req.Values())); err != nil {
		return nil, agentic.ErrRequestFailed.With(err)
	}

	return response, nil
}

// Geocode resolves a free-text place name to a single location. When more
// than one place matches, the first one is returned.
func (c *Client) Geocode(ctx context.Context, city string) (Location, error) {
	if strings.TrimSpace(city) == "" {
		return Location{}, agentic.ErrBadParameter.With("city is required")
	}

	// Request a single result
	results, err := c.Search(ctx, &SearchRequest{Query: city, Limit: 1})
	if err != nil {
		return Location{}, err
	} else if len(results) == 0 {
		return Location{}, agentic.ErrNotFound.Withf("location %q", city)
	} else if _, _, ok := results[0].Coordinates(); !ok {
		return Location{}, agentic.ErrRequestFailed.Withf("location %q has no coordinates", city)
	}

	return results[0], nil
}
