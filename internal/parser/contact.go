package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[A-Za-z]{2,}`)
	// phoneCandidateRe is a loose prefilter; candidates are validated by
	// digit count afterwards.
	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\-\s()]{5,}\d`)
	urlRe            = regexp.MustCompile(`https?://\S+|www\.\S+`)
	nonDigitRe       = regexp.MustCompile(`\D`)
)

// Accepted digit counts for a phone candidate. 10–12 covers national
// numbers with or without a country prefix while rejecting the year ranges
// ("2019 - 2021") that a looser bound lets through.
const (
	phoneMinDigits = 10
	phoneMaxDigits = 12
)

// ExtractEmail returns the first email-shaped token in text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhones returns the distinct phone numbers found in text, each
// normalized to its digits, sorted for deterministic output. Candidates
// whose digit count falls outside the accepted range are discarded.
func ExtractPhones(text string) []string {
	seen := make(map[string]bool)
	for _, cand := range phoneCandidateRe.FindAllString(text, -1) {
		digits := nonDigitRe.ReplaceAllString(cand, "")
		if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
			continue
		}
		seen[digits] = true
	}

	phones := make([]string, 0, len(seen))
	for p := range seen {
		phones = append(phones, p)
	}
	sort.Strings(phones)
	return phones
}

// portfolioHosts are host substrings classified as portfolio links.
var portfolioHosts = []string{"behance", "dribbble", "medium", "portfolio", "gitlab"}

// ExtractURLs collects every http(s):// or www. token in text and
// classifies it by host. The first URL seen per category wins; anything
// unrecognized lands in Other.
func ExtractURLs(text string) types.ProfileURLs {
	urls := types.ProfileURLs{Other: []string{}}
	seen := make(map[string]bool)

	for _, raw := range urlRe.FindAllString(text, -1) {
		u := strings.TrimRight(raw, ".,;")
		if seen[u] {
			continue
		}
		seen[u] = true

		lu := strings.ToLower(u)
		switch {
		case strings.Contains(lu, "linkedin.com"):
			if urls.LinkedIn == "" {
				urls.LinkedIn = u
			}
		case strings.Contains(lu, "github.com"):
			if urls.GitHub == "" {
				urls.GitHub = u
			}
		case containsAny(lu, portfolioHosts):
			if urls.Portfolio == "" {
				urls.Portfolio = u
			}
		default:
			urls.Other = append(urls.Other, u)
		}
	}
	return urls
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
