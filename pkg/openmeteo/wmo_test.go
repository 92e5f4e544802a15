package openmeteo

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: Describe

func Test_Describe(t *testing.T) {
	tests := []struct {
		code   int
		expect string
	}{
		{0, "Clear sky"},
		{1, "Mainly clear"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{45, "Fog"},
		{48, "Depositing rime fog"},
		{51, "Light drizzle"},
		{53, "Moderate drizzle"},
		{55, "Dense drizzle"},
		{56, "Light freezing drizzle"},
		{57, "Dense freezing drizzle"},
		{61, "Slight rain"},
		{63, "Moderate rain"},
		{65, "Heavy rain"},
		{66, "Light freezing rain"},
		{67, "Heavy freezing rain"},
		{71, "Slight snow fall"},
		{73, "Moderate snow fall"},
		{75, "Heavy snow fall"},
		{77, "Snow grains"},
		{80, "Slight rain showers"},
		{81, "Moderate rain showers"},
		{82, "Violent rain showers"},
		{85, "Slight snow showers"},
		{86, "Heavy snow showers"},
		{95, "Thunderstorm"},
		{96, "Thunderstorm with slight hail"},
		{99, "Thunderstorm with heavy hail"},
	}

	assert.Len(t, conditions, len(tests))
	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, Describe(tt.code))
			// Pure: repeated calls agree
			assert.Equal(t, Describe(tt.code), Describe(tt.code))
		})
	}
}

func Test_Describe_Unknown(t *testing.T) {
	for _, code := range []int{-1, 4, 44, 50, 100, 1 << 20} {
		assert.Equal(t, UnknownCondition, Describe(code))
	}
	assert.Equal(t, "Unknown weather condition", UnknownCondition)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: ForecastRequest

func Test_ForecastRequest_Values(t *testing.T) {
	tests := []struct {
		name   string
		req    *ForecastRequest
		expect url.Values
	}{
		{
			name: "coordinates only",
			req:  &ForecastRequest{Latitude: 52.52, Longitude: 13.405},
			expect: url.Values{
				"latitude":  []string{"52.52"},
				"longitude": []string{"13.405"},
			},
		},
		{
			name: "current weather",
			req:  &ForecastRequest{Latitude: 22.5726459, Longitude: 88.3638953, CurrentWeather: true},
			expect: url.Values{
				"latitude":        []string{"22.5726459"},
				"longitude":       []string{"88.3638953"},
				"current_weather": []string{"true"},
			},
		},
		{
			name: "negative coordinates with timezone",
			req:  &ForecastRequest{Latitude: -33.8688, Longitude: -151.2093, CurrentWeather: true, Timezone: "auto"},
			expect: url.Values{
				"latitude":        []string{"-33.8688"},
				"longitude":       []string{"-151.2093"},
				"current_weather": []string{"true"},
				"timezone":        []string{"auto"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.req.Values())
		})
	}
}
