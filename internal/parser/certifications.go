package parser

import (
	"regexp"
	"strings"
)

var certKeywordRe = regexp.MustCompile(`(?i)\b(certif|certificat|certificate|certified)`)

// knownCertPrograms are certificate program names matched case-insensitively
// even when no "cert" stem appears on the line.
var knownCertPrograms = []string{
	"aws certified", "google cloud", "tensorflow", "professional certificate",
	"coursera", "udemy",
}

const (
	certMinLen = 6
	certMaxLen = 199
	// certWindowBytes is how far past the first "cert" occurrence the
	// line-by-line sweep extends.
	certWindowBytes = 800
)

// bulletCutset strips list markers and surrounding whitespace from a line.
const bulletCutset = " -•\t"

// ExtractCertifications collects certification-looking lines: lines with a
// certification keyword stem or a known program name, length-filtered and
// deduplicated, followed by a sweep of the text window starting at the
// first "cert" occurrence that appends any non-trivial line not already
// collected.
func ExtractCertifications(text string) []string {
	certs := []string{}
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		if !certKeywordRe.MatchString(line) && !containsAny(strings.ToLower(line), knownCertPrograms) {
			continue
		}
		s := strings.Trim(line, bulletCutset)
		if len(s) < certMinLen || len(s) > certMaxLen {
			continue
		}
		if !seen[s] {
			seen[s] = true
			certs = append(certs, s)
		}
	}

	// Sweep the window after the first "cert" mention; section bodies often
	// list programs with no keyword on the line itself.
	if idx := strings.Index(strings.ToLower(text), "cert"); idx >= 0 {
		// The offset comes from a lowercased copy, which can be longer
		// than text for some runes.
		if idx > len(text) {
			idx = len(text)
		}
		end := idx + certWindowBytes
		if end > len(text) {
			end = len(text)
		}
		for _, line := range strings.Split(text[idx:end], "\n") {
			s := strings.TrimSpace(line)
			if len(s) <= 3 || seen[s] {
				continue
			}
			seen[s] = true
			certs = append(certs, s)
		}
	}
	return certs
}
