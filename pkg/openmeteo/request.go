package openmeteo

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// ForecastRequest defines the input for a forecast query
type ForecastRequest struct {
	Latitude       float64 `json:"latitude" jsonschema:"Latitude in decimal degrees"`
	Longitude      float64 `json:"longitude" jsonschema:"Longitude in decimal degrees"`
	CurrentWeather bool    `json:"current_weather,omitempty" jsonschema:"Include current conditions"`
	Timezone       string  `json:"timezone,omitempty" jsonschema:"Timezone for returned times, or 'auto'"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts ForecastRequest to URL query parameters
func (r *ForecastRequest) Values() url.Values {
	result := url.Values{}
	result.Set("latitude", strconv.FormatFloat(r.Latitude, 'f', -1, 64))
	result.Set("longitude", strconv.FormatFloat(r.Longitude, 'f', -1, 64))
	if r.CurrentWeather {
		result.Set("current_weather", "true")
	}
	if r.Timezone != "" {
		result.Set("timezone", r.Timezone)
	}
	return result
}
