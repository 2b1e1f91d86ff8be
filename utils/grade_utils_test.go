package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPM10Grade(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "1"},
		{30, "1"},
		{31, "2"},
		{80, "2"},
		{81, "3"},
		{150, "3"},
		{151, "4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPM10Grade(tt.value), "PM10 %.0f", tt.value)
	}
}

func TestGetPM25Grade(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "1"},
		{15, "1"},
		{16, "2"},
		{35, "2"},
		{36, "3"},
		{75, "3"},
		{76, "4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPM25Grade(tt.value), "PM2.5 %.0f", tt.value)
	}
}
