package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/nlp"
)

// titleKeywords are role words that mark a line as title-bearing.
var titleKeywords = []string{
	"engineer", "developer", "scientist", "researcher", "intern", "manager",
	"lead", "principal", "analyst", "architect", "consultant", "director",
	"assistant", "associate", "trainer", "specialist",
}

var titleSeparatorRe = regexp.MustCompile(`—|-|–|\|| at `)

const (
	titleMinWords = 2
	titleMaxWords = 6
	titleMaxChars = 80
	// orgWindowTokens is how many tokens before an ORG entity are examined
	// for a title.
	orgWindowTokens = 6
)

// ExtractRoleTitles returns the distinct role titles found in the
// experience section. Lines carrying a separator or a title keyword are
// split on separators and the first segment kept when it is short enough
// to be a title. With a recognizer present, short token windows preceding
// each detected organization are also kept when they contain a title
// keyword.
func ExtractRoleTitles(ctx context.Context, recognizer nlp.Recognizer, sectionText string) []string {
	var candidates []string

	for _, line := range strings.Split(sectionText, "\n") {
		clean := strings.Trim(line, bulletCutset)
		if clean == "" {
			continue
		}
		low := strings.ToLower(clean)
		if !strings.Contains(low, " at ") && !strings.Contains(clean, "—") &&
			!strings.Contains(clean, "|") && !containsAny(low, titleKeywords) {
			continue
		}
		first := strings.TrimSpace(titleSeparatorRe.Split(clean, 2)[0])
		words := len(strings.Fields(first))
		if words >= titleMinWords && words <= titleMaxWords && len(first) < titleMaxChars {
			candidates = append(candidates, first)
		}
	}

	if recognizer != nil {
		candidates = append(candidates, titlesPrecedingOrgs(ctx, recognizer, sectionText)...)
	}

	titles := []string{}
	seen := make(map[string]bool)
	for _, t := range candidates {
		if !seen[t] {
			seen[t] = true
			titles = append(titles, t)
		}
	}
	return titles
}

// titlesPrecedingOrgs looks just before each organization mention for a
// short token window containing a title keyword, e.g. "Software Engineer"
// ahead of "Acme Corp".
func titlesPrecedingOrgs(ctx context.Context, recognizer nlp.Recognizer, text string) []string {
	entities, err := recognizer.Entities(ctx, text)
	if err != nil {
		return nil
	}

	var out []string
	for _, ent := range entities {
		if ent.Category != nlp.CategoryOrganization || ent.Text == "" {
			continue
		}
		idx := strings.Index(text, ent.Text)
		if idx <= 0 {
			continue
		}
		window := strings.Fields(text[:idx])
		if len(window) > orgWindowTokens {
			window = window[len(window)-orgWindowTokens:]
		}
		cand := strings.Trim(strings.Join(window, " "), bulletCutset)
		if cand != "" && containsAny(strings.ToLower(cand), titleKeywords) {
			out = append(out, cand)
		}
	}
	return out
}
