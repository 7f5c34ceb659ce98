// Package nlp defines the optional entity-recognition capability used to
// sharpen name, location, and role-title extraction. The extraction core
// must behave identically in shape whether or not a Recognizer is wired in;
// absence only reduces precision.
package nlp

import "context"

// Category labels the kind of named entity a Recognizer detected.
type Category string

// Entity categories the extraction core consumes.
const (
	CategoryPerson       Category = "PERSON"
	CategoryGPE          Category = "GPE"
	CategoryLocation     Category = "LOC"
	CategoryOrganization Category = "ORG"
)

// Entity is a named span detected in free text.
type Entity struct {
	Text     string   `json:"text"`
	Category Category `json:"label"`
}

// IsLocation reports whether the entity denotes a place.
func (e Entity) IsLocation() bool {
	return e.Category == CategoryGPE || e.Category == CategoryLocation
}

// Recognizer detects named entities in a text span. Implementations should
// return partial results with a nil error where possible; callers treat any
// error the same as an absent recognizer.
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}
