/*
worldtime reports the current local time for a small, fixed set of cities.
*/
package worldtime

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	// Packages
	agentic "github.com/vedanth-p/Agentic-AI-playground"
	tool "github.com/vedanth-p/Agentic-AI-playground/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Clock resolves city names to time zones and formats the current time
type Clock struct {
	now   func() time.Time
	zones map[string]string
}

// ClockOpt is an option which can be applied to a Clock
type ClockOpt func(*Clock)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Layout of the reported time, for example 2025-01-01 17:30:00 IST+0530
	Layout = "2006-01-02 15:04:05 MST-0700"
)

// Known cities, keyed by lowercase name
var zones = map[string]string{
	"new york":       "America/New_York",
	"kolkata":        "Asia/Kolkata",
	"kolkata, india": "Asia/Kolkata",
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a clock using the system time
func New(opt ...ClockOpt) *Clock {
	c := &Clock{
		now:   time.Now,
		zones: zones,
	}
	for _, fn := range opt {
		fn(c)
	}
	return c
}

// WithNow replaces the time source
func WithNow(fn func() time.Time) ClockOpt {
	return func(c *Clock) {
		if fn != nil {
			c.now = fn
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Zone returns the IANA time zone name for a city, or an error if the city
// is not known
func (c *Clock) Zone(city string) (string, error) {
	if zone, exists := c.zones[strings.ToLower(strings.TrimSpace(city))]; exists {
		return zone, nil
	}
	return "", agentic.ErrUnknownTimezone.Withf("Timezone for '%s' unknown.", city)
}

// Now returns a sentence with the current time in a city
func (c *Clock) Now(city string) (string, error) {
	zone, err := c.Zone(city)
	if err != nil {
		return "", err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", agentic.ErrInternalServerError.Withf("%s: %v", zone, err)
	}
	return fmt.Sprintf("The current time in %s is %s", city, c.now().In(loc).Format(Layout)), nil
}

// Lookup returns the current time in a city as a tool result
func (c *Clock) Lookup(city string) tool.Result {
	report, err := c.Now(city)
	if err != nil {
		if errors.Is(err, agentic.ErrUnknownTimezone) {
			return tool.Failure(fmt.Sprintf("Timezone for '%s' unknown.", city))
		}
		return tool.Failure(err.Error())
	}
	return tool.Success(report)
}
