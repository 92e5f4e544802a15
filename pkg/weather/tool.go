package weather

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	nominatim "github.com/vedanth-p/Agentic-AI-playground/pkg/nominatim"
	openmeteo "github.com/vedanth-p/Agentic-AI-playground/pkg/openmeteo"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request defines the input for the weather tool
type Request struct {
	City string `json:"city" jsonschema:"The name of the city, for example London or Tokyo"`
}

type currentWeather struct {
	service *Service
}

var _ tool.Tool = (*currentWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool returns the weather tool backed by the given service
func NewTool(service *Service) tool.Tool {
	return &currentWeather{service: service}
}

// NewTools creates the geocoding and forecast clients with the given client
// options and returns the weather tool for use with agents. Nominatim and
// Open-Meteo endpoints can be overridden when non-empty.
func NewTools(nominatimUrl, openmeteoUrl string, clientOpts []client.ClientOpt, opt ...Opt) ([]tool.Tool, error) {
	// Geocoder
	geoOpts := append([]client.ClientOpt{}, clientOpts...)
	if nominatimUrl != "" {
		geoOpts = append(geoOpts, client.OptEndpoint(nominatimUrl))
	}
	geocoder, err := nominatim.New(geoOpts...)
	if err != nil {
		return nil, err
	}

	// Forecaster
	forecastOpts := append([]client.ClientOpt{}, clientOpts...)
	if openmeteoUrl != "" {
		forecastOpts = append(forecastOpts, client.OptEndpoint(openmeteoUrl))
	}
	forecaster, err := openmeteo.New(forecastOpts...)
	if err != nil {
		return nil, err
	}

	// Service
	service, err := New(geocoder, forecaster, opt...)
	if err != nil {
		return nil, err
	}

	return []tool.Tool{NewTool(service)}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (*currentWeather) Name() string {
	return "get_weather"
}

func (*currentWeather) Description() string {
	return "Fetches the current weather for any city. Returns a status and either a report or an error message."
}

// Return the JSON schema for the tool input
func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[Request](nil)
}

// Run the tool with the given input. Lookup failures are returned as an
// error result rather than a Go error.
func (c *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req Request

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, agentic.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.City == "" {
		return nil, agentic.ErrBadParameter.With("city is required")
	}

	return c.service.Lookup(ctx, req.City), nil
}
