package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// 화순읍 ↔ 광주광역시청, 약 15km
	d := HaversineKm(35.0644, 126.9865, 35.1601, 126.8514)
	assert.InDelta(t, 16, d, 2)

	// 같은 지점은 거리 0
	assert.Zero(t, HaversineKm(35.0644, 126.9865, 35.0644, 126.9865))
}
