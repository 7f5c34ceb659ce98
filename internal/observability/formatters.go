// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow items as bullets, with a count of
// the remainder.
func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintRecord outputs a human-readable summary of an extraction result.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Email))
	if len(record.Phones) > 0 {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", strings.Join(record.Phones, ", ")))
	}
	if record.YearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Years:  %.1f\n", record.YearsExperience))
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", record.Skills)
	writeList(&sb, "Role Titles", record.RoleTitles)

	if len(record.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := record.Experience[i]
			label := entry.Title
			if entry.Company != "" {
				label += " @ " + entry.Company
			}
			if entry.Dates != "" {
				label += " (" + entry.Dates + ")"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", strings.TrimSpace(label)))
		}
		if len(record.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Education", record.Education)
	writeList(&sb, "Certifications", record.Certifications)

	p.printBox(fmt.Sprintf("EXTRACTED: %s", record.SourcePath), strings.TrimRight(sb.String(), "\n"))
}

// PrintSectionMapSummary outputs the detected section tags in order.
func (p *Printer) PrintSectionMapSummary(tags []string) {
	if len(tags) == 0 {
		p.printBox("SECTIONS", "(no section headers detected)")
		return
	}
	p.printBox("SECTIONS", strings.Join(tags, " → "))
}
