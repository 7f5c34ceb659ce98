package parser

import (
	"regexp"
	"strings"
)

var projectKeywordRe = regexp.MustCompile(`(?i)\bprojects?\b`)

// projectWindowBytes bounds the fallback slice taken after a "project"
// keyword when no projects section exists.
const projectWindowBytes = 1000

// projectMaxWords: shorter lines are kept as probable project titles even
// without an explicit separator.
const projectMaxWords = 12

// ExtractProjects returns project description lines. The projects section
// is preferred; without one, a window of text following the first "project"
// keyword anywhere in the joined sections is scanned instead. A line
// qualifies when it contains a colon, an em-dash, an http link, or is
// short enough to be a title. Order of first appearance is preserved.
func ExtractProjects(sections *SectionMap) []string {
	projText := sections.Get(TagProjects)
	if projText == "" {
		whole := sections.Joined()
		if loc := projectKeywordRe.FindStringIndex(whole); loc != nil {
			end := loc[0] + projectWindowBytes
			if end > len(whole) {
				end = len(whole)
			}
			projText = whole[loc[0]:end]
		}
	}

	projects := []string{}
	seen := make(map[string]bool)
	for _, line := range strings.Split(projText, "\n") {
		s := strings.Trim(line, bulletCutset)
		if s == "" {
			continue
		}
		if !strings.Contains(s, ":") && !strings.Contains(s, "—") &&
			!strings.Contains(s, "http") && len(strings.Fields(s)) >= projectMaxWords {
			continue
		}
		if !seen[s] {
			seen[s] = true
			projects = append(projects, s)
		}
	}
	return projects
}
