package parser

import (
	"regexp"
	"strings"
)

// degreeKeywordRe matches degree-keyword stems: spelled-out degrees plus
// the abbreviated variants common on engineering resumes. Short
// abbreviations are bounded so they do not fire inside ordinary words.
var degreeKeywordRe = regexp.MustCompile(
	`(?i)\b(bachelor|master|phd|mba|b\.?\s?tech\b|m\.?\s?tech\b|b\.?e\b|m\.?e\b|bs\b|ms\b)`)

// eduYearRe accepts any bare 4-digit year. Graduation dates predate the
// 19xx/20xx window that tenure estimation assumes.
var eduYearRe = regexp.MustCompile(`\b\d{4}\b`)

// ReconstructEducation filters the education section down to the lines
// that carry a degree keyword or a bare 4-digit year. No entry structuring
// is attempted; the output is a flat ordered list and duplicates are
// permitted.
func ReconstructEducation(sectionText string) []string {
	lines := []string{}
	for _, raw := range strings.Split(sectionText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if degreeKeywordRe.MatchString(line) || eduYearRe.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}
