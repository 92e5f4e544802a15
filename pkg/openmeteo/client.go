/*
openmeteo implements a current-conditions client for the Open-Meteo forecast API
https://open-meteo.com/en/docs
*/
package openmeteo

import (
	"context"

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
	endPoint = "https://api.open-meteo.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client. No API key is required. The default endpoint can
// be overridden with client.OptEndpoint.
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
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

// Forecast returns the raw forecast response for the request
func (c *Client) Forecast(ctx context.Context, req *ForecastRequest) (Forecast, error) {
	var response Forecast

	// Request -> Response
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return Forecast{}, agentic.ErrRequestFailed.With(err)
	}

	return response, nil
}

// Current returns the current conditions at the given coordinates
func (c *Client) Current(ctx context.Context, lat, lon float64) (Reading, error) {
	forecast, err := c.Forecast(ctx, &ForecastRequest{
		Latitude:       lat,
		Longitude:      lon,
		CurrentWeather: true,
	})
	if err != nil {
		return Reading{}, err
	} else if forecast.CurrentWeather == nil {
		return Reading{}, agentic.ErrMalformedResponse.With("missing current_weather")
	} else if forecast.CurrentWeather.Temperature == nil {
		return Reading{}, agentic.ErrMalformedResponse.With("missing current_weather.temperature")
	} else if forecast.CurrentWeather.WeatherCode == nil {
		return Reading{}, agentic.ErrMalformedResponse.With("missing current_weather.weathercode")
	}

	return Reading{
		Temperature: *forecast.CurrentWeather.Temperature,
		Code:        *forecast.CurrentWeather.WeatherCode,
	}, nil
}
