package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"Single line unchanged", "John Doe", "John Doe"},
		{"Collapses double newline", "a\n\nb", "a\nb"},
		{"Collapses long blank run", "a\n\n\n\n\nb", "a\nb"},
		{"CRLF normalized", "a\r\nb\r\n\r\nc", "a\nb\nc"},
		{"Bare CR normalized", "a\rb", "a\nb"},
		{"Case and punctuation preserved", "John DOE, Jr.\n\nEngineer!", "John DOE, Jr.\nEngineer!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextNoBlankRuns(t *testing.T) {
	inputs := []string{
		"a\n\n\nb\n\nc",
		strings.Repeat("\n", 40),
		"line\r\n\r\n\r\nline\n\n\n\nline",
		"",
	}
	for _, input := range inputs {
		out := NormalizeText(input)
		assert.NotContains(t, out, "\n\n", "normalized output must not contain a blank run")
	}
}
