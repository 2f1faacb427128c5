package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayCount will test function DisplayCount
func TestDisplayCount(t *testing.T) {
	tests := []struct {
		name          string
		top           string
		expectedCount int
	}{
		{
			name:          "Valid top parameter",
			top:           "3",
			expectedCount: 3,
		},
		{
			name:          "Missing top parameter",
			top:           "",
			expectedCount: 5,
		},
		{
			name:          "Malformed top parameter",
			top:           "lots",
			expectedCount: 5,
		},
		{
			name:          "Zero top parameter",
			top:           "0",
			expectedCount: 5,
		},
		{
			name:          "Negative top parameter",
			top:           "-2",
			expectedCount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := ChartQuery{Top: tt.top}
			assert.Equal(t, tt.expectedCount, query.DisplayCount(5))
		})
	}
}
