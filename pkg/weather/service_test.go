package weather_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	// Packages
	logrus "github.com/sirupsen/logrus"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	nominatim "github.com/vedanth-p/Agentic-AI-playground/pkg/nominatim"
	openmeteo "github.com/vedanth-p/Agentic-AI-playground/pkg/openmeteo"
	weather "github.com/vedanth-p/Agentic-AI-playground/pkg/weather"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

type fakeGeocoder struct {
	location nominatim.Location
	err      error
	calls    int
}

func (f *fakeGeocoder) Geocode(_ context.Context, city string) (nominatim.Location, error) {
	f.calls++
	if f.err != nil {
		return nominatim.Location{}, f.err
	}
	return f.location, nil
}

type fakeForecaster struct {
	reading  openmeteo.Reading
	err      error
	calls    int
	lat, lon float64
	deadline bool
}

func (f *fakeForecaster) Current(ctx context.Context, lat, lon float64) (openmeteo.Reading, error) {
	f.calls++
	f.lat, f.lon = lat, lon
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return openmeteo.Reading{}, f.err
	}
	return f.reading, nil
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func berlin() *fakeGeocoder {
	lat, lon := 52.52, 13.405
	return &fakeGeocoder{location: nominatim.Location{Latitude: &lat, Longitude: &lon, DisplayName: "Berlin, Germany"}}
}

func newService(t *testing.T, g weather.Geocoder, f weather.Forecaster, opts ...weather.Opt) *weather.Service {
	t.Helper()
	service, err := weather.New(g, f, append([]weather.Opt{weather.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)
	return service
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_service_001(t *testing.T) {
	assert := assert.New(t)

	geocoder := berlin()
	forecaster := &fakeForecaster{reading: openmeteo.Reading{Temperature: 15.2, Code: 3}}
	service := newService(t, geocoder, forecaster)

	result := service.Lookup(context.Background(), "Berlin")
	assert.True(result.OK())
	assert.Equal("The weather in Berlin is Overcast with a temperature of 15.2°C.", result.Report())
	assert.Equal(52.52, forecaster.lat)
	assert.Equal(13.405, forecaster.lon)
	assert.True(forecaster.deadline)
}

func Test_service_002(t *testing.T) {
	assert := assert.New(t)

	geocoder := &fakeGeocoder{err: agentic.ErrNotFound.Withf("location %q", "Nowhereville")}
	forecaster := &fakeForecaster{}
	service := newService(t, geocoder, forecaster)

	result := service.Lookup(context.Background(), "Nowhereville")
	assert.False(result.OK())
	assert.Equal("Could not find location: 'Nowhereville'", result.Message())
	assert.Equal(0, forecaster.calls)
}

func Test_service_003(t *testing.T) {
	assert := assert.New(t)

	geocoder := &fakeGeocoder{err: agentic.ErrRequestFailed.With("connection refused")}
	forecaster := &fakeForecaster{}
	service := newService(t, geocoder, forecaster)

	result := service.Lookup(context.Background(), "Berlin")
	assert.False(result.OK())
	assert.Equal("Geocoding API request failed: connection refused", result.Message())
	assert.Equal(0, forecaster.calls)
}

func Test_service_004(t *testing.T) {
	assert := assert.New(t)

	forecaster := &fakeForecaster{err: agentic.ErrMalformedResponse.With("missing current_weather")}
	service := newService(t, berlin(), forecaster)

	result := service.Lookup(context.Background(), "Berlin")
	assert.False(result.OK())
	assert.Equal("Could not retrieve current weather data.", result.Message())
	assert.Equal(1, forecaster.calls)
}

func Test_service_005(t *testing.T) {
	assert := assert.New(t)

	forecaster := &fakeForecaster{err: agentic.ErrRequestFailed.With(errors.New("status 502"))}
	service := newService(t, berlin(), forecaster)

	result := service.Lookup(context.Background(), "Berlin")
	assert.False(result.OK())
	assert.Equal("Weather API request failed: status 502", result.Message())
}

func Test_service_006(t *testing.T) {
	assert := assert.New(t)

	geocoder := berlin()
	service := newService(t, geocoder, &fakeForecaster{})

	// Empty city never reaches the geocoder
	result := service.Lookup(context.Background(), " ")
	assert.False(result.OK())
	assert.NotEmpty(result.Message())
	assert.Equal(0, geocoder.calls)
}

func Test_service_007(t *testing.T) {
	tests := []struct {
		temperature float64
		code        int
		display     string
		expect      string
	}{
		{15.0, 0, "Kolkata, West Bengal, India", "The weather in Kolkata is Clear sky with a temperature of 15.0°C."},
		{-3.5, 71, "Oslo, Norway", "The weather in Oslo is Slight snow fall with a temperature of -3.5°C."},
		{0, 95, "Miami", "The weather in Miami is Thunderstorm with a temperature of 0.0°C."},
		{21.25, 42, "Tokyo, Japan", "The weather in Tokyo is Unknown weather condition with a temperature of 21.25°C."},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			geocoder := berlin()
			geocoder.location.DisplayName = tt.display
			forecaster := &fakeForecaster{reading: openmeteo.Reading{Temperature: tt.temperature, Code: tt.code}}
			result := newService(t, geocoder, forecaster).Lookup(context.Background(), tt.display)
			assert.True(t, result.OK())
			assert.Equal(t, tt.expect, result.Report())
		})
	}
}

func Test_service_008(t *testing.T) {
	assert := assert.New(t)

	// Zero timeout disables the per-call deadline
	forecaster := &fakeForecaster{reading: openmeteo.Reading{Temperature: 1, Code: 1}}
	service := newService(t, berlin(), forecaster, weather.WithTimeout(0))
	assert.True(service.Lookup(context.Background(), "Berlin").OK())
	assert.False(forecaster.deadline)

	// Bad options
	_, err := weather.New(berlin(), forecaster, weather.WithTimeout(-time.Second))
	assert.ErrorIs(err, agentic.ErrBadParameter)
	_, err = weather.New(nil, forecaster)
	assert.ErrorIs(err, agentic.ErrBadParameter)
	_, err = weather.New(berlin(), forecaster, weather.WithLogger(nil))
	assert.ErrorIs(err, agentic.ErrBadParameter)
}

func Test_service_009(t *testing.T) {
	assert := assert.New(t)

	// A location without coordinates never reaches the forecaster
	geocoder := &fakeGeocoder{location: nominatim.Location{DisplayName: "Berlin, Germany"}}
	forecaster := &fakeForecaster{reading: openmeteo.Reading{Temperature: 15.2, Code: 3}}
	result := newService(t, geocoder, forecaster).Lookup(context.Background(), "Berlin")
	assert.False(result.OK())
	assert.True(strings.HasPrefix(result.Message(), "Geocoding API request failed"), result.Message())
	assert.Equal(0, forecaster.calls)
}
