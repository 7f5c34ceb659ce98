package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-extractor/internal/nlp"
)

func TestExtractLocationsPatternOnly(t *testing.T) {
	text := "Based in San Francisco, CA. Open to Austin, Texas."
	locs := ExtractLocations(context.Background(), nil, text, 5)

	assert.Contains(t, locs, "San Francisco, CA")
	assert.Contains(t, locs, "Austin, Texas")
}

func TestExtractLocationsWithRecognizer(t *testing.T) {
	rec := &fakeRecognizer{entities: []nlp.Entity{
		{Text: "Berlin", Category: nlp.CategoryGPE},
		{Text: "Acme Corp", Category: nlp.CategoryOrganization},
		{Text: "Lake District", Category: nlp.CategoryLocation},
	}}
	locs := ExtractLocations(context.Background(), rec, "worked remotely", 5)

	assert.Equal(t, []string{"Berlin", "Lake District"}, locs)
}

func TestExtractLocationsCapAndDedup(t *testing.T) {
	rec := &fakeRecognizer{entities: []nlp.Entity{
		{Text: "Berlin", Category: nlp.CategoryGPE},
		{Text: "Berlin", Category: nlp.CategoryGPE},
		{Text: "Paris", Category: nlp.CategoryGPE},
		{Text: "Rome", Category: nlp.CategoryGPE},
	}}
	locs := ExtractLocations(context.Background(), rec, "", 2)
	assert.Equal(t, []string{"Berlin", "Paris"}, locs)
}

func TestExtractLocationsEmpty(t *testing.T) {
	assert.Equal(t, []string{}, ExtractLocations(context.Background(), nil, "no places named here", 5))
}
