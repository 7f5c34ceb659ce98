package parser

import "strings"

const (
	// DefaultSummaryMaxLines caps how many leading non-empty lines form the
	// summary candidate.
	DefaultSummaryMaxLines = 6
	// summaryMaxChars is the length past which the summary is cut back to
	// its first sentence.
	summaryMaxChars = 400
)

// ExtractSummary returns the text preceding the earliest section header,
// truncated to the first maxLines non-empty lines. When the joined result
// runs past 400 characters it is cut at the first period.
func ExtractSummary(text string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultSummaryMaxLines
	}

	pre := text
	if idx := earliestMarkerIndex(text); idx >= 0 {
		// The marker offset comes from a lowercased copy, which can be
		// longer than text for some runes.
		if idx > len(text) {
			idx = len(text)
		}
		pre = text[:idx]
	}

	var candidates []string
	for _, line := range strings.Split(strings.TrimSpace(pre), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		candidates = append(candidates, strings.TrimSpace(line))
		if len(candidates) == maxLines {
			break
		}
	}

	joined := strings.Join(candidates, " ")
	if len(joined) > summaryMaxChars {
		if dot := strings.Index(joined, "."); dot >= 0 {
			return joined[:dot+1]
		}
	}
	return joined
}
