package nominatim

import (
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Location is a single place returned by the search service. Coordinates
// are string-encoded on the wire, and nil when the service omits them.
type Location struct {
	PlaceId     uint64   `json:"place_id,omitempty"`
	Latitude    *float64 `json:"lat,string"`
	Longitude   *float64 `json:"lon,string"`
	DisplayName string   `json:"display_name"`
	Name        string   `json:"name,omitempty"`
	Class       string   `json:"class,omitempty"`
	Type        string   `json:"type,omitempty"`
	Importance  float64  `json:"importance,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (l Location) String() string {
	return types.Stringify(l)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Coordinates returns the latitude and longitude, or false when either is
// missing
func (l Location) Coordinates() (float64, float64, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return 0, 0, false
	}
	return *l.Latitude, *l.Longitude, true
}

// ShortName returns the first comma-delimited segment of the display name
func (l Location) ShortName() string {
	name, _, _ := strings.Cut(l.DisplayName, ",")
	return strings.TrimSpace(name)
}
