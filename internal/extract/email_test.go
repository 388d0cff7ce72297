package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "plain address",
			text:     "Contact: jane.doe@example.com",
			expected: "jane.doe@example.com",
		},
		{
			name:     "first of several",
			text:     "jane@example.com or backup bob@example.org",
			expected: "jane@example.com",
		},
		{
			name:     "embedded in resume text",
			text:     "Jane Doe\nSoftware Engineer\njane.doe@example.com | 555-0199\nExperience: ...",
			expected: "jane.doe@example.com",
		},
		{
			name:     "hyphenated domain",
			text:     "reach me at j-doe@my-company.co.uk today",
			expected: "j-doe@my-company.co.uk",
		},
		{
			name:     "no address",
			text:     "Jane Doe, Software Engineer, 555-0199",
			expected: "",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindEmail(tt.text))
		})
	}
}
