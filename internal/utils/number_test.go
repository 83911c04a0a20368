package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0.95", 0.95, true},
		{"0,95", 0.95, true},
		{" 1 000,5 ", 1000.5, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFloat(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, tt.in)
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 0.5, FloatOr("x", 0.5))
	assert.Equal(t, 7, IntOr(" 7 ", 3))
	assert.Equal(t, 3, IntOr("seven", 3))
	assert.True(t, BoolOr("on", false))
	assert.False(t, BoolOr("No", true))
	assert.True(t, BoolOr("maybe", true))
}
