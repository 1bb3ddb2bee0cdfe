package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFormTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "datetime-local without seconds",
			input:    "2024-01-07T10:00",
			expected: time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "datetime-local with seconds",
			input:    "2024-01-07T10:30:15",
			expected: time.Date(2024, 1, 7, 10, 30, 15, 0, time.UTC),
		},
		{
			name:     "RFC3339 UTC",
			input:    "2024-06-15T09:00:00Z",
			expected: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with offset normalized to UTC",
			input:    "2024-06-15T10:00:00+01:00",
			expected: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "date only is rejected",
			input:   "2024-06-15",
			wantErr: true,
		},
		{
			name:    "garbage input",
			input:   "next sunday",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %v, want %v", got, tt.expected)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
