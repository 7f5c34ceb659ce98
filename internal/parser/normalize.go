// Package parser implements the resume extraction core: text normalization,
// section segmentation, stateless field extractors, and the experience and
// education reconstructors. Every extractor fails closed: absence of
// evidence yields an empty value, never an error, so the assembled record
// is always fully keyed.
package parser

import (
	"regexp"
	"strings"
)

var blankRunRe = regexp.MustCompile(`\n{2,}`)

// NormalizeText collapses a raw extracted document into the canonical
// line-oriented form the extractors consume.
// Line endings are normalized to LF and any run of two or more consecutive
// newlines is collapsed into one. Case and punctuation are preserved for
// the downstream heuristics. Empty input yields empty output; callers must
// treat that as "no data extracted", not as an error.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Collapse blank runs
	return blankRunRe.ReplaceAllString(text, "\n")
}
