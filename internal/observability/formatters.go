// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-site/internal/types"
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
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a summary of the loaded record: identity and how many
// entries of each section are enabled.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", record.Title))
	sb.WriteString("\n")

	sb.WriteString(sectionLine("Experience", len(record.EnabledExperience()), len(record.Experience)))
	sb.WriteString(sectionLine("Education", len(record.EnabledEducation()), len(record.Education)))
	sb.WriteString(sectionLine("Courses", len(record.EnabledCourses()), len(record.Courses)))
	sb.WriteString(sectionLine("Projects", len(record.EnabledProjects()), len(record.Projects)))
	sb.WriteString(sectionLine("References", len(record.EnabledReferences()), len(record.References)))
	sb.WriteString("\n")

	if len(record.TechnicalSkills) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(record.TechnicalSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.TechnicalSkills[i].Name))
		}
		if len(record.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.TechnicalSkills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME RECORD", sb.String())
}

func sectionLine(label string, enabled, total int) string {
	return fmt.Sprintf("%-12s %d enabled of %d\n", label+":", enabled, total)
}

// PrintRenderSummary outputs what ended up in the rendered document
func (p *Printer) PrintRenderSummary(summary *RenderSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document size:        %d bytes\n", summary.Bytes))
	sb.WriteString(fmt.Sprintf("Embedded assets:      %d\n", summary.EmbeddedAssets))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries:   %d\n", summary.Experience))
	sb.WriteString(fmt.Sprintf("Education entries:    %d\n", summary.Education))
	sb.WriteString(fmt.Sprintf("Course/project tiles: %d\n", summary.Tiles))
	sb.WriteString(fmt.Sprintf("Technical skills:     %d\n", summary.TechnicalSkills))
	sb.WriteString(fmt.Sprintf("Interpersonal skills: %d\n", summary.InterpersonalSkills))
	sb.WriteString(fmt.Sprintf("Languages:            %d\n", summary.Languages))
	sb.WriteString(fmt.Sprintf("References:           %d\n", summary.References))

	if len(summary.EmptySections) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Empty sections:       %d\n", len(summary.EmptySections)))
	}

	if len(summary.Unresolved) > 0 {
		sb.WriteString("\n")
		sb.WriteString("Unresolved placeholders:\n")
		for _, token := range summary.Unresolved {
			sb.WriteString(fmt.Sprintf("  ⚠ {{%s}}\n", token))
		}
	}

	p.printBox("RENDERED DOCUMENT", sb.String())
}

// PrintTemplateCheck outputs the placeholder coverage of a template
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) PrintTemplateCheck(missing []string, unknown []string) {
	if len(missing) == 0 && len(unknown) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ TEMPLATE USES EVERY PLACEHOLDER")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("Not used by template (%d):\n", len(missing)))
		for _, key := range missing {
			sb.WriteString(fmt.Sprintf("  • %s\n", key))
		}
	}
	if len(unknown) > 0 {
		if len(missing) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Unknown to the renderer (%d):\n", len(unknown)))
		for _, token := range unknown {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", token))
		}
	}

	p.printBox("TEMPLATE PLACEHOLDERS", sb.String())
}
