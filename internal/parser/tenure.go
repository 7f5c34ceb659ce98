package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	yearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	monthYearRe = regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*,?\s*(\d{4})`)
	dateRangeRe = regexp.MustCompile(`(?i)(?P<start>[\w\s./-]+?)\s*(?:to|[-–—])\s*(?P<end>[\w\s./-]+)`)
	presentRe   = regexp.MustCompile(`(?i)present|current|now`)
)

// parseYearToken resolves a token like "2018", "Jan 2018", or "Mar, 2020"
// to its 4-digit year, or 0 when none is found.
func parseYearToken(tok string) int {
	if y := yearRe.FindString(tok); y != "" {
		n, _ := strconv.Atoi(y)
		return n
	}
	if m := monthYearRe.FindStringSubmatch(tok); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// EstimateYearsExperience estimates total tenure from date ranges in text.
// Every "A to B" / "A – B" range whose endpoints resolve to years (with
// present/current/now resolving to nowYear) contributes a (start, end)
// pair; the estimate is the span from the earliest start to the latest
// end. Without any ranges it falls back to the span between the earliest
// and latest bare 4-digit years, clamping the end to nowYear. No years at
// all yields 0.
func EstimateYearsExperience(text string, nowYear int) float64 {
	type span struct{ start, end int }
	var spans []span

	// Scan line by line: the end token is greedy, and letting it run
	// across newlines would swallow every later range in the text.
	var rangeMatches [][]string
	for _, line := range strings.Split(text, "\n") {
		rangeMatches = append(rangeMatches, dateRangeRe.FindAllStringSubmatch(line, -1)...)
	}

	for _, m := range rangeMatches {
		startTok, endTok := m[1], m[2]
		start := parseYearToken(startTok)
		if start == 0 {
			start = parseYearToken(endTok)
		}
		end := 0
		if presentRe.MatchString(endTok) {
			end = nowYear
		} else {
			end = parseYearToken(endTok)
		}
		if start > 0 && end >= start {
			spans = append(spans, span{start, end})
		}
	}

	if len(spans) == 0 {
		var years []int
		seen := make(map[int]bool)
		for _, y := range yearRe.FindAllString(text, -1) {
			n, _ := strconv.Atoi(y)
			if !seen[n] {
				seen[n] = true
				years = append(years, n)
			}
		}
		if len(years) == 0 {
			return 0
		}
		sort.Ints(years)
		latest := years[len(years)-1]
		if latest > nowYear {
			latest = nowYear
		}
		spans = append(spans, span{years[0], latest})
	}

	earliest, latest := spans[0].start, spans[0].end
	for _, s := range spans[1:] {
		if s.start < earliest {
			earliest = s.start
		}
		if s.end > latest {
			latest = s.end
		}
	}
	if latest < earliest {
		return 0
	}
	return float64(latest - earliest)
}
