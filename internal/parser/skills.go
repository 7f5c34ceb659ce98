package parser

import (
	"regexp"
	"sort"
	"strings"
)

// SimilarityScorer computes a 0–100 partial-substring similarity between a
// needle and a haystack. A nil scorer disables fuzzy matching; substring
// hits still count.
type SimilarityScorer func(needle, haystack string) int

// DefaultSkillVocabulary is the skill vocabulary matched against resumes
// when no override is configured.
var DefaultSkillVocabulary = []string{
	"python", "java", "c++", "pytorch", "tensorflow", "scikit-learn", "numpy",
	"pandas", "sql", "docker", "kubernetes", "aws", "azure", "nlp", "computer vision",
	"opencv", "matplotlib", "seaborn", "react", "nodejs", "flask", "django",
}

// DefaultFuzzyThreshold is the minimum partial-ratio score for a fuzzy
// vocabulary hit.
const DefaultFuzzyThreshold = 70

var skillTokenRe = regexp.MustCompile(`[A-Za-z#+\-.]+`)

// ExtractSkills matches the vocabulary against the lowercased token stream
// of text. A term is accepted when it appears as a substring of the joined
// stream, or when the scorer rates it at or above threshold. The result is
// sorted.
func ExtractSkills(text string, vocab []string, scorer SimilarityScorer, threshold int) []string {
	joined := strings.Join(skillTokenRe.FindAllString(strings.ToLower(text), -1), " ")

	found := make(map[string]bool)
	for _, term := range vocab {
		if strings.Contains(joined, term) {
			found[term] = true
			continue
		}
		if scorer != nil && joined != "" && scorer(term, joined) >= threshold {
			found[term] = true
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
