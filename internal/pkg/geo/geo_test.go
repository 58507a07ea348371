package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lat: 9.3103, Lng: 123.3083}.Valid())
	assert.True(t, Point{Lat: -90, Lng: 180}.Valid())
	assert.True(t, Point{Lat: 90, Lng: -180}.Valid())

	assert.False(t, Point{Lat: 90.0001, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: -180.0001}.Valid())
}

func TestHaversineMeters(t *testing.T) {
	a := Point{Lat: 9.3103, Lng: 123.3083}

	assert.Zero(t, HaversineMeters(a, a))

	// One degree of latitude is about 111.2 km.
	b := Point{Lat: 10.3103, Lng: 123.3083}
	assert.InDelta(t, 111195, HaversineMeters(a, b), 100)

	// Symmetric.
	assert.Equal(t, HaversineMeters(a, b), HaversineMeters(b, a))
}

func TestRoundKey(t *testing.T) {
	assert.Equal(t, "9.3103,123.3083", RoundKey(Point{Lat: 9.31031, Lng: 123.30833}))
	assert.Equal(t, "9.3103,123.3083", RoundKey(Point{Lat: 9.31029, Lng: 123.30828}))
	assert.Equal(t, "-9.3103,-123.3083", RoundKey(Point{Lat: -9.31031, Lng: -123.30833}))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "450 m", FormatDistance(450.7))
	assert.Equal(t, "999 m", FormatDistance(999.9))
	assert.Equal(t, "1.0 km", FormatDistance(1000))
	assert.Equal(t, "2.5 km", FormatDistance(2540))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "under a minute", FormatDuration(0.4))
	assert.Equal(t, "1 min", FormatDuration(1))
	assert.Equal(t, "5 min", FormatDuration(5.4))
	assert.Equal(t, "6 min", FormatDuration(5.6))
}
