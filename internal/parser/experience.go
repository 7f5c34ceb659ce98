package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

// headerLabelRe matches lines that are exactly a section header label;
// those are segmentation leakage, not entry content.
var headerLabelRe = regexp.MustCompile(`(?i)^(experience|work experience|professional experience|personal|internships|projects|skills)$`)

// dateWordRe marks lines carrying date vocabulary.
var dateWordRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|\d{4}|present|current)\b`)

// entrySeparatorRe splits "Title — Company" shaped lines.
var entrySeparatorRe = regexp.MustCompile(`—|-|–|\||, at | at `)

// separatorMaxWords bounds how long a line may be and still count as a
// title/company header rather than prose that happens to contain a hyphen.
const separatorMaxWords = 12

// entryState is the reconstructor's position in the entry lifecycle.
type entryState int

const (
	stateNoOpenEntry entryState = iota
	stateOpenNoTitle
	stateOpenWithTitle
)

// experienceReconstructor groups raw experience-section lines into discrete
// job entries. It holds a single mutable current-entry slot; a line either
// starts a new entry (closing the open one), fills the open entry's
// title/company, or extends its description.
type experienceReconstructor struct {
	entries []types.ExperienceEntry
	current *types.ExperienceEntry
}

func (r *experienceReconstructor) state() entryState {
	switch {
	case r.current == nil:
		return stateNoOpenEntry
	case r.current.Title == "":
		return stateOpenNoTitle
	default:
		return stateOpenWithTitle
	}
}

func (r *experienceReconstructor) close() {
	if r.current != nil {
		r.entries = append(r.entries, *r.current)
		r.current = nil
	}
}

// feed processes one line through the ordered rule list. The date check
// runs before the separator check, which runs before the generic
// description rule: a line can satisfy several shapes, and dated entry
// starts must not be misread as bare title lines.
func (r *experienceReconstructor) feed(line string) {
	// Rule 1: discard header labels that leaked into the section body.
	if headerLabelRe.MatchString(line) {
		return
	}

	// Rule 2: a date-bearing line with a range shape or a bare year starts
	// a new entry carrying only dates.
	if dateWordRe.MatchString(line) && (dateRangeRe.MatchString(line) || yearRe.MatchString(line)) {
		r.close()
		r.current = &types.ExperienceEntry{Dates: line}
		return
	}

	// Rule 3: a short separator line supplies title and company, filling
	// the open entry when its title is still empty, otherwise a fresh one.
	if entrySeparatorRe.MatchString(line) && len(strings.Fields(line)) <= separatorMaxWords {
		title, company := splitTitleCompany(line)
		if r.state() == stateOpenNoTitle {
			r.current.Title = title
			r.current.Company = company
			return
		}
		r.close()
		r.current = &types.ExperienceEntry{Title: title, Company: company}
		return
	}

	// Rule 4: anything else is description text.
	if r.current == nil {
		r.current = &types.ExperienceEntry{Description: line}
		return
	}
	if r.current.Description == "" {
		r.current.Description = line
	} else {
		r.current.Description += " " + line
	}
}

func splitTitleCompany(line string) (title, company string) {
	parts := entrySeparatorRe.Split(line, 2)
	title = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		company = strings.TrimSpace(parts[1])
	}
	return title, company
}

// ReconstructExperience turns a raw experience section into discrete job
// entries. Entries with no populated field are dropped, as are entries
// whose only populated field is a title that is itself a section header
// label (mis-segmented headers that leaked into the body).
func ReconstructExperience(sectionText string) []types.ExperienceEntry {
	r := &experienceReconstructor{}
	for _, raw := range strings.Split(sectionText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r.feed(line)
	}
	r.close()

	entries := []types.ExperienceEntry{}
	for _, e := range r.entries {
		if e.IsEmpty() {
			continue
		}
		if e.Dates == "" && e.Company == "" && e.Description == "" && headerLabelRe.MatchString(e.Title) {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
