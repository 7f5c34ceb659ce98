package rendering

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/jonathan/resume-extractor/internal/types"
)

// descriptionMaxChars caps each experience description in the rendered
// output so one rambling entry cannot dominate the document.
const descriptionMaxChars = 800

// markdownTemplate lays out the extracted record as a Markdown document.
// Sections with no content are omitted entirely.
const markdownTemplate = `# {{.Name}}

## Contact
{{- if .Email}}
- **Email:** {{.Email}}{{end}}
{{- range .Phones}}
- **Phone:** {{.}}{{end}}
{{- if .LinkedIn}}
- **LinkedIn:** {{.LinkedIn}}{{end}}
{{- if .GitHub}}
- **GitHub:** {{.GitHub}}{{end}}
{{- if .Portfolio}}
- **Portfolio:** {{.Portfolio}}{{end}}
{{- range .OtherURLs}}
- **URL:** {{.}}{{end}}
{{- range .Locations}}
- **Location:** {{.}}{{end}}
{{- if .Summary}}

## Summary

{{.Summary}}
{{- end}}
{{- if .YearsLine}}

**Estimated experience:** {{.YearsLine}}
{{- end}}
{{- if .Skills}}

## Skills
{{range .Skills}}
- {{.}}{{end}}
{{- end}}
{{- if .Experience}}

## Experience
{{range .Experience}}
### {{.Heading}}
{{if .Description}}
{{.Description}}
{{end}}{{end}}
{{- end}}
{{- if .Education}}

## Education
{{range .Education}}
- {{.}}{{end}}
{{- end}}
{{- if .Projects}}

## Projects
{{range .Projects}}
- {{.}}{{end}}
{{- end}}
{{- if .Certifications}}

## Certifications
{{range .Certifications}}
- {{.}}{{end}}
{{- end}}
`

// experienceView is one experience entry prepared for the template.
type experienceView struct {
	Heading     string
	Description string
}

// markdownData is the flattened view of a record the template consumes.
type markdownData struct {
	Name           string
	Email          string
	Phones         []string
	LinkedIn       string
	GitHub         string
	Portfolio      string
	OtherURLs      []string
	Locations      []string
	Summary        string
	YearsLine      string
	Skills         []string
	Experience     []experienceView
	Education      []string
	Projects       []string
	Certifications []string
}

// RenderMarkdown renders an extracted resume record as a Markdown document.
func RenderMarkdown(record *types.ResumeRecord) (string, error) {
	if record == nil {
		return "", &RenderError{Message: "record is nil"}
	}

	tmpl, err := template.New("resume").Parse(markdownTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, buildMarkdownData(record)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}

	return out.String(), nil
}

func buildMarkdownData(record *types.ResumeRecord) *markdownData {
	data := &markdownData{
		Name:           record.Name,
		Email:          record.Email,
		Phones:         record.Phones,
		LinkedIn:       record.URLs.LinkedIn,
		GitHub:         record.URLs.GitHub,
		Portfolio:      record.URLs.Portfolio,
		OtherURLs:      record.URLs.Other,
		Locations:      record.Locations,
		Summary:        record.Summary,
		Skills:         record.Skills,
		Education:      record.Education,
		Projects:       record.Projects,
		Certifications: record.Certifications,
	}

	if data.Name == "" {
		data.Name = "Unknown Candidate"
	}

	if record.YearsExperience > 0 {
		data.YearsLine = formatYears(record.YearsExperience)
	}

	for _, entry := range record.Experience {
		data.Experience = append(data.Experience, experienceView{
			Heading:     entryHeading(entry),
			Description: truncateDescription(entry.Description),
		})
	}

	return data
}

// entryHeading joins the dated parts of an experience entry, skipping
// whichever the extractor could not recover.
func entryHeading(entry types.ExperienceEntry) string {
	var parts []string
	if entry.Dates != "" {
		parts = append(parts, entry.Dates)
	}
	titleCompany := entry.Title
	if entry.Company != "" {
		if titleCompany != "" {
			titleCompany += ", " + entry.Company
		} else {
			titleCompany = entry.Company
		}
	}
	if titleCompany != "" {
		parts = append(parts, titleCompany)
	}
	if len(parts) == 0 {
		return "(undated entry)"
	}
	return strings.Join(parts, " | ")
}

// truncateDescription cuts at the last word boundary before the cap.
func truncateDescription(description string) string {
	if len(description) <= descriptionMaxChars {
		return description
	}
	cut := description[:descriptionMaxChars]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// formatYears prints whole years without a decimal point, fractional
// estimates with one.
func formatYears(years float64) string {
	if years == float64(int64(years)) {
		return strconv.FormatFloat(years, 'f', 0, 64) + " years"
	}
	return strconv.FormatFloat(years, 'f', 1, 64) + " years"
}
