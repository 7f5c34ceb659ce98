package parser

import (
	"context"
	"regexp"

	"github.com/jonathan/resume-extractor/internal/nlp"
)

// cityStateRe matches "Capitalized City, ST" or "Capitalized City, Country"
// shapes as a pattern-only complement to entity recognition.
var cityStateRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*(?:[A-Z]{2}|[A-Za-z]{2,})\b`)

// DefaultMaxLocations caps the returned location list.
const DefaultMaxLocations = 5

// ExtractLocations returns up to topN distinct locations: GPE/LOC entities
// from the recognizer (when present) followed by regex city-state matches,
// in order of first appearance.
func ExtractLocations(ctx context.Context, recognizer nlp.Recognizer, text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultMaxLocations
	}

	var candidates []string
	if recognizer != nil {
		if entities, err := recognizer.Entities(ctx, text); err == nil {
			for _, ent := range entities {
				if ent.IsLocation() {
					candidates = append(candidates, ent.Text)
				}
			}
		}
	}
	candidates = append(candidates, cityStateRe.FindAllString(text, -1)...)

	locations := []string{}
	seen := make(map[string]bool)
	for _, loc := range candidates {
		if seen[loc] {
			continue
		}
		seen[loc] = true
		locations = append(locations, loc)
		if len(locations) == topN {
			break
		}
	}
	return locations
}
