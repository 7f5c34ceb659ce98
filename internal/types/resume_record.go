// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ExperienceEntry represents one reconstructed work-history entry.
// Any of Dates, Title, Company may be empty when the source lines did not
// carry that information; Description accumulates the free-form lines that
// followed the entry header.
type ExperienceEntry struct {
	Dates       string `json:"dates,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description"`
}

// IsEmpty reports whether the entry carries no information at all.
func (e ExperienceEntry) IsEmpty() bool {
	return e.Dates == "" && e.Title == "" && e.Company == "" && e.Description == ""
}

// ProfileURLs holds the classified URLs found in a resume.
type ProfileURLs struct {
	LinkedIn  string   `json:"linkedin,omitempty" validate:"omitempty,url|startswith=www."`
	GitHub    string   `json:"github,omitempty" validate:"omitempty,url|startswith=www."`
	Portfolio string   `json:"portfolio,omitempty"`
	Other     []string `json:"other"`
}

// ResumeRecord is the structured output of the extraction pipeline.
// All list-valued fields are always non-nil so that serialized output is
// fully keyed even when every heuristic came up empty.
type ResumeRecord struct {
	ID          uuid.UUID `json:"id"`
	ExtractedAt time.Time `json:"extracted_at"`
	SourcePath  string    `json:"source_path,omitempty"`

	Name            string            `json:"name"`
	Email           string            `json:"email" validate:"omitempty,email"`
	Phones          []string          `json:"phones"`
	Skills          []string          `json:"skills"`
	Education       []string          `json:"education"`
	Experience      []ExperienceEntry `json:"experience"`
	URLs            ProfileURLs       `json:"urls"`
	Certifications  []string          `json:"certifications"`
	Projects        []string          `json:"projects"`
	Summary         string            `json:"summary"`
	Locations       []string          `json:"locations"`
	RoleTitles      []string          `json:"role_titles"`
	YearsExperience float64           `json:"years_experience"`
}

// NewResumeRecord returns a record with a fresh ID, the current timestamp,
// and every list field initialized to empty.
func NewResumeRecord(sourcePath string) *ResumeRecord {
	return &ResumeRecord{
		ID:             uuid.New(),
		ExtractedAt:    time.Now().UTC(),
		SourcePath:     sourcePath,
		Phones:         []string{},
		Skills:         []string{},
		Education:      []string{},
		Experience:     []ExperienceEntry{},
		URLs:           ProfileURLs{Other: []string{}},
		Certifications: []string{},
		Projects:       []string{},
		Locations:      []string{},
		RoleTitles:     []string{},
	}
}

var recordValidator = validator.New()

// Validate checks the field-format constraints on the record (email syntax
// and URL shapes). Heuristic extraction can legitimately produce empty
// fields, so only populated fields are checked.
func (r *ResumeRecord) Validate() error {
	return recordValidator.Struct(r)
}

// ContentEqual reports whether two records carry identical extracted
// content, ignoring the per-run ID and extraction timestamp.
func (r *ResumeRecord) ContentEqual(other *ResumeRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	a, b := *r, *other
	a.ID, b.ID = uuid.Nil, uuid.Nil
	a.ExtractedAt, b.ExtractedAt = time.Time{}, time.Time{}
	return recordsEqual(&a, &b)
}

func recordsEqual(a, b *ResumeRecord) bool {
	if a.Name != b.Name || a.Email != b.Email || a.Summary != b.Summary ||
		a.SourcePath != b.SourcePath || a.YearsExperience != b.YearsExperience {
		return false
	}
	if a.URLs.LinkedIn != b.URLs.LinkedIn || a.URLs.GitHub != b.URLs.GitHub ||
		a.URLs.Portfolio != b.URLs.Portfolio || !stringsEqual(a.URLs.Other, b.URLs.Other) {
		return false
	}
	if !stringsEqual(a.Phones, b.Phones) || !stringsEqual(a.Skills, b.Skills) ||
		!stringsEqual(a.Education, b.Education) || !stringsEqual(a.Certifications, b.Certifications) ||
		!stringsEqual(a.Projects, b.Projects) || !stringsEqual(a.Locations, b.Locations) ||
		!stringsEqual(a.RoleTitles, b.RoleTitles) {
		return false
	}
	if len(a.Experience) != len(b.Experience) {
		return false
	}
	for i := range a.Experience {
		if a.Experience[i] != b.Experience[i] {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
