package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestPrintRecord(t *testing.T) {
	record := types.NewResumeRecord("resume.pdf")
	record.Name = "Jane Doe"
	record.Email = "jane@example.com"
	record.Phones = []string{"5551234567"}
	record.Skills = []string{"go", "python"}
	record.YearsExperience = 5
	record.Experience = []types.ExperienceEntry{
		{Dates: "2019 - 2021", Title: "Engineer", Company: "Acme"},
	}

	var buf strings.Builder
	NewPrinter(&buf).PrintRecord(record)
	out := buf.String()

	assert.Contains(t, out, "EXTRACTED: resume.pdf")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "5551234567")
	assert.Contains(t, out, "go")
	assert.Contains(t, out, "Engineer @ Acme")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintRecord_NilIsNoop(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintRecord(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecord_TruncatesLongLists(t *testing.T) {
	record := types.NewResumeRecord("resume.pdf")
	record.Name = "Jane Doe"
	record.Skills = []string{"a", "b", "c", "d", "e", "f", "g"}

	var buf strings.Builder
	NewPrinter(&buf).PrintRecord(record)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintRecord_TruncatesLongLines(t *testing.T) {
	record := types.NewResumeRecord("resume.pdf")
	record.Name = strings.Repeat("x", 100)

	var buf strings.Builder
	NewPrinter(&buf).PrintRecord(record)

	assert.Contains(t, buf.String(), "...")
	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestPrintSectionMapSummary(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintSectionMapSummary([]string{"header", "experience", "education"})

	assert.Contains(t, buf.String(), "header")
	assert.Contains(t, buf.String(), "experience")

	buf.Reset()
	NewPrinter(&buf).PrintSectionMapSummary(nil)
	assert.Contains(t, buf.String(), "no section headers")
}
