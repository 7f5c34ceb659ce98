package parser

import (
	"regexp"
	"strings"
)

// Canonical section tags. The segmenter resolves every matched header
// keyword to one of these, so lookups never depend on how the header
// happened to be spelled in the source document.
const (
	TagHeader         = "header" // unclassified leading text before the first header
	TagRaw            = "raw"    // the whole normalized text, kept for fallback
	TagSummary        = "summary"
	TagExperience     = "experience"
	TagEducation      = "education"
	TagSkills         = "skills"
	TagProjects       = "projects"
	TagCertifications = "certifications"
	TagPublications   = "publications"
)

// sectionMarkerRe matches section header keywords as whole words anywhere
// in the lowercased text, not just at line starts. This is deliberate: it
// tolerates resumes where a header is glued to body text, at the cost of a
// header word inside a sentence falsely starting a new section. Longer
// phrases come first so "work experience" is not consumed as bare
// "experience" plus a stray word.
var sectionMarkerRe = regexp.MustCompile(
	`\b(work experience|professional experience|experience|employment|education|projects|skills|summary|certifications|publications)\b`)

// canonicalTags maps every matchable header keyword to its canonical tag.
var canonicalTags = map[string]string{
	"work experience":         TagExperience,
	"professional experience": TagExperience,
	"experience":              TagExperience,
	"employment":              TagExperience,
	"education":               TagEducation,
	"projects":                TagProjects,
	"skills":                  TagSkills,
	"summary":                 TagSummary,
	"certifications":          TagCertifications,
	"publications":            TagPublications,
}

// Section is one contiguous span of the source text that follows a
// recognized header keyword (or precedes the first one, tagged "header").
type Section struct {
	Tag  string
	Text string
}

// SectionMap holds the segmented document. Sections appear in discovery
// order; concatenating their texts reconstructs the normalized source.
// When the same canonical tag matched more than once, Get returns the last
// occurrence.
type SectionMap struct {
	Sections []Section
	Raw      string
}

// Get returns the text of the last section resolved to tag, or "" when the
// tag never matched. Get("raw") always returns the whole text.
func (m *SectionMap) Get(tag string) string {
	if tag == TagRaw {
		return m.Raw
	}
	for i := len(m.Sections) - 1; i >= 0; i-- {
		if m.Sections[i].Tag == tag {
			return m.Sections[i].Text
		}
	}
	return ""
}

// Has reports whether any section resolved to tag.
func (m *SectionMap) Has(tag string) bool {
	return m.Get(tag) != ""
}

// Joined concatenates all section texts in discovery order. With no
// recognized headers it is the raw text itself.
func (m *SectionMap) Joined() string {
	if len(m.Sections) == 0 {
		return m.Raw
	}
	var sb strings.Builder
	for _, s := range m.Sections {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// SplitSections partitions normalized text into canonical sections by
// scanning for header keywords. Spans run from one match start to the next;
// the last span runs to end of text. Text before the first match is kept
// under the "header" tag. When no header matches at all, the map carries
// only the raw text.
func SplitSections(text string) *SectionMap {
	m := &SectionMap{Raw: text}
	if text == "" {
		return m
	}

	lower := strings.ToLower(text)
	matches := sectionMarkerRe.FindAllStringIndex(lower, -1)
	if len(matches) == 0 {
		return m
	}

	// Offsets come from the lowered text; lowering can shift byte lengths
	// for a handful of Unicode characters, so clamp before slicing.
	clamp := func(i int) int {
		if i > len(text) {
			return len(text)
		}
		return i
	}

	if matches[0][0] > 0 {
		m.Sections = append(m.Sections, Section{Tag: TagHeader, Text: text[:clamp(matches[0][0])]})
	}
	for i, match := range matches {
		start := clamp(match[0])
		end := len(text)
		if i+1 < len(matches) {
			end = clamp(matches[i+1][0])
		}
		tag := canonicalTags[lower[match[0]:match[1]]]
		m.Sections = append(m.Sections, Section{Tag: tag, Text: text[start:end]})
	}
	return m
}

// earliestMarkerIndex returns the byte offset of the first header keyword
// in text, or -1 when none matches. Used by the summary extractor to bound
// the pre-section region.
func earliestMarkerIndex(text string) int {
	loc := sectionMarkerRe.FindStringIndex(strings.ToLower(text))
	if loc == nil {
		return -1
	}
	return loc[0]
}
