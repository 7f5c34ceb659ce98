package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain email", "Reach me at john.doe@example.com anytime", "john.doe@example.com"},
		{"First of several", "a@b.co then c@d.io", "a@b.co"},
		{"Plus tag", "jane+resume@mail.example.org", "jane+resume@mail.example.org"},
		{"No email", "no contact data here", ""},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmail(tt.input))
		})
	}
}

func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Two numbers with extension noise",
			input:    "Call 987-654-3210 or (123) 456-7890 ext 5",
			expected: []string{"1234567890", "9876543210"},
		},
		{
			name:     "Duplicate formats collapse",
			input:    "987-654-3210 and 987 654 3210",
			expected: []string{"9876543210"},
		},
		{
			name:     "Country prefix accepted",
			input:    "+1 987-654-3210",
			expected: []string{"19876543210"},
		},
		{
			name:     "Year range rejected",
			input:    "2019 - 2021",
			expected: []string{},
		},
		{
			name:     "Too few digits rejected",
			input:    "call 123-4567",
			expected: []string{},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPhones(tt.input))
		})
	}
}

func TestExtractURLs(t *testing.T) {
	text := "See https://linkedin.com/in/jdoe and https://github.com/jdoe.\n" +
		"Portfolio: https://jdoe.dribbble.com\nAlso www.example.com/blog"
	urls := ExtractURLs(text)

	assert.Equal(t, "https://linkedin.com/in/jdoe", urls.LinkedIn)
	assert.Equal(t, "https://github.com/jdoe", urls.GitHub)
	assert.Equal(t, "https://jdoe.dribbble.com", urls.Portfolio)
	assert.Equal(t, []string{"www.example.com/blog"}, urls.Other)
}

func TestExtractURLsFirstMatchWinsPerCategory(t *testing.T) {
	text := "https://github.com/first then https://github.com/second"
	urls := ExtractURLs(text)
	assert.Equal(t, "https://github.com/first", urls.GitHub)
}

func TestExtractURLsEmpty(t *testing.T) {
	urls := ExtractURLs("nothing linked here")
	assert.Empty(t, urls.LinkedIn)
	assert.Empty(t, urls.GitHub)
	assert.Empty(t, urls.Portfolio)
	assert.Equal(t, []string{}, urls.Other)
}
