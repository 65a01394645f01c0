package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []Point{
	{Lat: 37.50, Lng: 127.03},
	{Lat: 37.51, Lng: 127.04},
	{Lat: 37.49, Lng: 127.02},
	{Lat: 0, Lng: 0},
	{Lat: -33.8688, Lng: 151.2093},
	{Lat: 51.5074, Lng: -0.1278},
	{Lat: 90, Lng: 180},
	{Lat: -90, Lng: -180},
}

func TestDistanceIdentity(t *testing.T) {
	for _, p := range samples {
		assert.Equal(t, 0.0, Distance(p, p), "point %+v", p)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 0.005, "%+v <-> %+v", a, b)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// one hundredth of a degree of latitude is about 1.11 km
	d := Distance(Point{Lat: 37.50, Lng: 127.03}, Point{Lat: 37.51, Lng: 127.03})
	require.InDelta(t, 1.11, d, 0.01)

	// London to Sydney
	d = Distance(Point{Lat: 51.5074, Lng: -0.1278}, Point{Lat: -33.8688, Lng: 151.2093})
	require.InDelta(t, 16994, d, 10)

	// antipodes never produce NaN
	d = Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 180})
	require.False(t, math.IsNaN(d))
	require.InDelta(t, math.Pi*EarthRadiusKm, d, 0.01)
}

func TestDistanceRoundsToTwoDecimals(t *testing.T) {
	d := Distance(samples[0], samples[1])
	assert.Equal(t, d, math.Round(d*100)/100)
}

func TestPointValid(t *testing.T) {
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"seoul", Point{Lat: 37.5, Lng: 127.0}, true},
		{"poles", Point{Lat: -90, Lng: 180}, true},
		{"nan lat", Point{Lat: math.NaN(), Lng: 1}, false},
		{"inf lng", Point{Lat: 1, Lng: math.Inf(1)}, false},
		{"lat out of range", Point{Lat: 91, Lng: 0}, false},
		{"lng out of range", Point{Lat: 0, Lng: -181}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Valid())
		})
	}
}
