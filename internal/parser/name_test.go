package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-extractor/internal/nlp"
)

// fakeRecognizer returns a fixed entity list, optionally failing, and
// records the text it was asked about.
type fakeRecognizer struct {
	entities []nlp.Entity
	err      error
	seenText string
}

func (f *fakeRecognizer) Entities(_ context.Context, text string) ([]nlp.Entity, error) {
	f.seenText = text
	return f.entities, f.err
}

func TestExtractNameWithRecognizer(t *testing.T) {
	rec := &fakeRecognizer{entities: []nlp.Entity{
		{Text: "Acme Corp", Category: nlp.CategoryOrganization},
		{Text: "Jane Q. Doe", Category: nlp.CategoryPerson},
	}}
	name := ExtractName(context.Background(), rec, "Jane Q. Doe\nEngineer\njane@example.com")
	assert.Equal(t, "Jane Q. Doe", name)
}

func TestExtractNameRecognizerTokenBounds(t *testing.T) {
	// Single-token and overlong person entities are rejected; the
	// heuristic fallback takes over.
	rec := &fakeRecognizer{entities: []nlp.Entity{
		{Text: "Jane", Category: nlp.CategoryPerson},
		{Text: "Jane Alpha Beta Gamma Delta", Category: nlp.CategoryPerson},
	}}
	name := ExtractName(context.Background(), rec, "Jane Doe\nEngineer")
	assert.Equal(t, "Jane Doe", name)
}

func TestExtractNameRecognizerErrorFallsBack(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("model unavailable")}
	name := ExtractName(context.Background(), rec, "Jane Doe\nEngineer")
	assert.Equal(t, "Jane Doe", name)
}

func TestExtractNameHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"First capitalized line", "Jane Doe\nSoftware Engineer", "Jane Doe"},
		{"Skips contact lines", "jane@example.com\n987-654-3210\nJane Doe", "Jane Doe"},
		{"Skips short all-caps header", "SUMMARY\nJane Doe", "Jane Doe"},
		{"Skips overlong lines", "one two three four five six seven Cap\nJane Doe", "Jane Doe"},
		{"No candidate", "all lowercase line here\n", ""},
		{"Empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(context.Background(), nil, tt.text))
		})
	}
}
