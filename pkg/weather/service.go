/*
weather answers "what is the weather in <city>" by resolving the city with a
geocoder, fetching current conditions for its coordinates and rendering a
one-sentence report.
*/
package weather

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	// Packages
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	nominatim "github.com/vedanth-p/Agentic-AI-playground/pkg/nominatim"
	openmeteo "github.com/vedanth-p/Agentic-AI-playground/pkg/openmeteo"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Geocoder resolves a place name to a location
type Geocoder interface {
	Geocode(ctx context.Context, city string) (nominatim.Location, error)
}

// Forecaster returns current conditions at a location
type Forecaster interface {
	Current(ctx context.Context, lat, lon float64) (openmeteo.Reading, error)
}

// Service is safe for concurrent use when the geocoder and forecaster are
type Service struct {
	geocoder   Geocoder
	forecaster Forecaster
	timeout    time.Duration
	log        logrus.FieldLogger
	tracer     trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/vedanth-p/Agentic-AI-playground/pkg/weather"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a weather service from a geocoder and a forecaster
func New(geocoder Geocoder, forecaster Forecaster, opt ...Opt) (*Service, error) {
	if geocoder == nil || forecaster == nil {
		return nil, agentic.ErrBadParameter.With("geocoder and forecaster are required")
	}
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Service{
		geocoder:   geocoder,
		forecaster: forecaster,
		timeout:    o.timeout,
		log:        o.log,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Lookup returns a report of the current weather in a city. Any failure
// is returned as an error result; the forecast is never requested when the
// city cannot be resolved.
func (s *Service) Lookup(ctx context.Context, city string) tool.Result {
	ctx, span := s.tracer.Start(ctx, "weather.Lookup", trace.WithAttributes(attribute.String("city", city)))
	defer span.End()
	log := s.log.WithField("city", city)

	if strings.TrimSpace(city) == "" {
		return s.failure(span, log, agentic.ErrBadParameter.With("city is required"), "City name is required.")
	}

	// Resolve the city
	location, err := s.geocode(ctx, city)
	if errors.Is(err, agentic.ErrNotFound) {
		return s.failure(span, log, err, fmt.Sprintf("Could not find location: '%s'", city))
	} else if err != nil {
		return s.failure(span, log, err, "Geocoding API "+err.Error())
	}
	lat, lon, _ := location.Coordinates()
	log = log.WithFields(logrus.Fields{"lat": lat, "lon": lon})
	log.Debug("geocoded")

	// Fetch the current conditions
	reading, err := s.current(ctx, location)
	if errors.Is(err, agentic.ErrMalformedResponse) {
		return s.failure(span, log, err, "Could not retrieve current weather data.")
	} else if err != nil {
		return s.failure(span, log, err, "Weather API "+err.Error())
	}
	log.WithFields(logrus.Fields{"temperature": reading.Temperature, "code": reading.Code}).Debug("current weather")

	// Format the report
	return tool.Success(fmt.Sprintf("The weather in %s is %s with a temperature of %s°C.",
		location.ShortName(), reading.Description(), formatCelsius(reading.Temperature),
	))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Service) geocode(parent context.Context, city string) (nominatim.Location, error) {
	ctx, span := s.tracer.Start(parent, "nominatim.Geocode")
	defer span.End()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	location, err := s.geocoder.Geocode(ctx, city)
	if err == nil {
		if _, _, ok := location.Coordinates(); !ok {
			err = agentic.ErrRequestFailed.Withf("location %q has no coordinates", city)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nominatim.Location{}, err
	}
	lat, lon, _ := location.Coordinates()
	span.SetAttributes(
		attribute.Float64("lat", lat),
		attribute.Float64("lon", lon),
		attribute.String("display_name", location.DisplayName),
	)
	return location, nil
}

func (s *Service) current(parent context.Context, location nominatim.Location) (openmeteo.Reading, error) {
	ctx, span := s.tracer.Start(parent, "openmeteo.Current")
	defer span.End()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	lat, lon, _ := location.Coordinates()
	reading, err := s.forecaster.Current(ctx, lat, lon)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return openmeteo.Reading{}, err
	}
	span.SetAttributes(attribute.Int("code", reading.Code))
	return reading, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Service) failure(span trace.Span, log logrus.FieldLogger, err error, message string) tool.Result {
	log.WithError(err).Warn("weather lookup failed")
	span.SetStatus(codes.Error, message)
	return tool.Failure(message)
}

// formatCelsius renders a temperature the way it appears in the forecast
// payload, always with a fractional part
func formatCelsius(v float64) string {
	str := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}
	return str
}
