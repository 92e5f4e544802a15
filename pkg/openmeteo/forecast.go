package openmeteo

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Forecast is the subset of the forecast response used here
type Forecast struct {
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	Elevation      float64         `json:"elevation,omitempty"`
	Timezone       string          `json:"timezone,omitempty"`
	CurrentWeather *CurrentWeather `json:"current_weather,omitempty"`
}

// CurrentWeather is the "current_weather" block of a forecast response.
// Temperature and WeatherCode are nil when absent from the payload.
type CurrentWeather struct {
	Time          string   `json:"time,omitempty"`
	Temperature   *float64 `json:"temperature"`
	WindSpeed     float64  `json:"windspeed,omitempty"`
	WindDirection float64  `json:"winddirection,omitempty"`
	WeatherCode   *int     `json:"weathercode"`
	IsDay         int      `json:"is_day,omitempty"`
}

// Reading is a current temperature (Celsius) and WMO condition code
type Reading struct {
	Temperature float64 `json:"temperature"`
	Code        int     `json:"code"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Forecast) String() string {
	return types.Stringify(f)
}

func (r Reading) String() string {
	return types.Stringify(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Description returns the English description of the condition code
func (r Reading) Description() string {
	return Describe(r.Code)
}
