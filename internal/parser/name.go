package parser

import (
	"context"
	"strings"
	"unicode"

	"github.com/jonathan/resume-extractor/internal/nlp"
)

// nameScanLines bounds how much of the document top the recognizer sees;
// names live at the top of a resume.
const nameScanLines = 10

// ExtractName returns the candidate name from the top of the document.
// With a recognizer present it returns the first PERSON entity of 2–4
// tokens found in the leading lines; otherwise (or when the recognizer
// fails or finds nothing) it falls back to a line-shape heuristic.
func ExtractName(ctx context.Context, recognizer nlp.Recognizer, text string) string {
	if recognizer != nil {
		if name := nameFromEntities(ctx, recognizer, text); name != "" {
			return name
		}
	}
	return heuristicName(text)
}

func nameFromEntities(ctx context.Context, recognizer nlp.Recognizer, text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	entities, err := recognizer.Entities(ctx, strings.Join(lines, "\n"))
	if err != nil {
		return ""
	}
	for _, ent := range entities {
		if ent.Category != nlp.CategoryPerson {
			continue
		}
		if n := len(strings.Fields(ent.Text)); n >= 2 && n <= 4 {
			return strings.TrimSpace(ent.Text)
		}
	}
	return ""
}

// heuristicName picks the first non-empty line that is not itself contact
// data, has 1–6 words, and contains at least one capitalized token.
// All-caps lines of up to two words are skipped as probable section
// headers.
func heuristicName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if emailRe.MatchString(s) || phoneCandidateRe.MatchString(s) || urlRe.MatchString(s) {
			continue
		}
		words := strings.Fields(s)
		if len(words) < 1 || len(words) > 6 {
			continue
		}
		if !hasCapitalizedToken(words) {
			continue
		}
		if isAllUpper(s) && len(words) <= 2 {
			continue
		}
		return s
	}
	return ""
}

func hasCapitalizedToken(words []string) bool {
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
