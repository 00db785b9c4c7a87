package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(48.8566, 2.3522, 48.8566, 2.3522))
}

func TestDistanceKmKnownPair(t *testing.T) {
	// Paris to London is roughly 344 km great-circle.
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 3)
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(40.7128, -74.0060, 34.0522, -118.2437)
	b := DistanceKm(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceKmShortRange(t *testing.T) {
	// Two points ~1.11 km apart along a meridian.
	d := DistanceKm(52.5200, 13.4050, 52.5300, 13.4050)
	assert.InDelta(t, 1.11, d, 0.02)
}
