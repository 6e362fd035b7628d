package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "single element",
			input:    []string{"Fetch"},
			expected: []string{"Fetch"},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  Fetch  ", "Swimming  ", "  Parks"},
			expected: []string{"Fetch", "Swimming", "Parks"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"Fetch", "Swimming", "Fetch", "Parks", "Swimming"},
			expected: []string{"Fetch", "Swimming", "Parks"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"Fetch", "", "  ", "Swimming"},
			expected: []string{"Fetch", "Swimming"},
		},
		{
			name:     "trimmed duplicates collapse",
			input:    []string{"  Fetch ", "Swimming", "Fetch", "", "  ", "Swimming"},
			expected: []string{"Fetch", "Swimming"},
		},
		{
			name:     "case is preserved and significant",
			input:    []string{"Fetch", "fetch", "FETCH"},
			expected: []string{"Fetch", "fetch", "FETCH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeAndTrim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
