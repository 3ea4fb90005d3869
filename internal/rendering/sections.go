package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-site/internal/types"
)

const noneStyle = "text-align:center;color:#6b7280;"

// Messages rendered in place of a section whose enabled entries are all gone
const (
	NoExperienceMessage = "No experience listed"
	NoEducationMessage  = "No education listed"
	NoCoursesMessage    = "No courses listed"
	NoProjectsMessage   = "No projects listed"
	NoReferencesMessage = "Available upon request"
)

// NonePlaceholder is the markup used for an empty section
func NonePlaceholder(message string) string {
	return fmt.Sprintf("<p class='section-none' style='%s'>%s</p>", noneStyle, message)
}

// Experience renders enabled experience entries as cards, in input order
func (r *Renderer) Experience(entries []types.ExperienceEntry) string {
	entries = types.FilterEnabled(entries, func(e types.ExperienceEntry) types.Switch { return e.Enabled })
	if len(entries) == 0 {
		return NonePlaceholder(NoExperienceMessage)
	}

	var sb strings.Builder
	for _, exp := range entries {
		company := exp.Company.String()

		sb.WriteString(`<div class="exp-entry">`)
		if img, ok := r.logo(exp.Logo.String(), company, ""); ok {
			fmt.Fprintf(&sb, `<div class="exp-logo">%s</div>`, img)
		}
		fmt.Fprintf(&sb, `<div class="exp-header"><div class="exp-company">%s%s</div><div class="exp-role">%s</div></div>`,
			EscapeHTML(company), parenthetical("exp-year", exp.Period.String()), EscapeHTML(exp.Role.String()))
		fmt.Fprintf(&sb, `<div class="exp-description">%s</div>`, bulletList("exp-bullets", exp.Bullets, ""))
		sb.WriteString(`</div>`)
	}
	return sb.String()
}

// Education renders enabled education entries as cards. A thesis bullet
// with a link is appended only when both thesis fields are present.
func (r *Renderer) Education(entries []types.EducationEntry) string {
	entries = types.FilterEnabled(entries, func(e types.EducationEntry) types.Switch { return e.Enabled })
	if len(entries) == 0 {
		return NonePlaceholder(NoEducationMessage)
	}

	var sb strings.Builder
	for _, edu := range entries {
		institution := edu.Institution.String()

		var thesis string
		if edu.HasThesis() {
			thesis = fmt.Sprintf(`<li class="thesis">Thesis: <a class="thesis-link" href="%s" target="_blank" rel="noopener">%s</a></li>`,
				SafeURL(edu.ThesisLink.String(), "#"), EscapeHTML(edu.ThesisTitle.String()))
		}

		sb.WriteString(`<div class="edu-entry">`)
		if img, ok := r.logo(edu.Logo.String(), institution, ""); ok {
			fmt.Fprintf(&sb, `<div class="edu-logo">%s</div>`, img)
		}
		fmt.Fprintf(&sb, `<div class="edu-header"><div class="edu-degree">%s</div><div class="edu-institution">%s%s</div></div>`,
			EscapeHTML(edu.Degree.String()), EscapeHTML(institution), parenthetical("edu-year", edu.Period.String()))
		fmt.Fprintf(&sb, `<div class="edu-details"><div class="edu-field">%s%s</div><div class="edu-description">%s</div></div>`,
			EscapeHTML(edu.Field.String()), parentheticalRich("edu-notes", edu.Notes.String()),
			bulletList("edu-bullets", edu.Bullets, thesis))
		sb.WriteString(`</div>`)
	}
	return sb.String()
}

// Courses renders enabled courses as badges sharing one background image
func (r *Renderer) Courses(entries []types.CourseEntry) string {
	entries = types.FilterEnabled(entries, func(e types.CourseEntry) types.Switch { return e.Enabled })
	if len(entries) == 0 {
		return NonePlaceholder(NoCoursesMessage)
	}

	var badgeStyle string
	if r.assets != nil && r.courseBadge != "" {
		if uri, ok := r.assets.DataURI(r.courseBadge, ""); ok {
			badgeStyle = fmt.Sprintf(` style="background-image:url('%s');"`, uri)
		}
	}

	var sb strings.Builder
	sb.WriteString("<div class='courses-row'>")
	for _, course := range entries {
		name := course.Name.String()
		logo, _ := r.logo(course.Logo.String(), name, "course-logo-inside")

		fmt.Fprintf(&sb, `<div class="course-item"><div class="course-badge"%s>%s</div>`+
			`<div class="course-name">%s</div><div class="course-year">%s</div></div>`,
			badgeStyle, logo, EscapeHTML(name), EscapeHTML(course.Period.String()))
	}
	sb.WriteString("</div>")
	return sb.String()
}

// Projects renders enabled projects as linked tiles; links default to "#"
func (r *Renderer) Projects(entries []types.ProjectEntry) string {
	entries = types.FilterEnabled(entries, func(e types.ProjectEntry) types.Switch { return e.Enabled })
	if len(entries) == 0 {
		return NonePlaceholder(NoProjectsMessage)
	}

	var sb strings.Builder
	sb.WriteString("<div class='courses-row'>")
	for _, project := range entries {
		name := project.Name.String()
		logo, _ := r.logo(project.Logo.String(), name, "project-logo-inside")

		fmt.Fprintf(&sb, `<div class="course-item"><div class="project-square">%s</div>`+
			`<a href='%s' class="project-name" target="_blank" rel="noopener">%s</a>`+
			`<div class="project-year">%s</div></div>`,
			logo, SafeURL(project.Link.String(), "#"), EscapeHTML(name), EscapeHTML(project.Period.String()))
	}
	sb.WriteString("</div>")
	return sb.String()
}

// bulletList renders bullets as an unordered list, followed by extra raw
// list items. Returns "" when there is nothing to list.
func bulletList(class string, bullets []types.Text, extra string) string {
	if len(bullets) == 0 && extra == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<ul class='%s'>", class)
	for _, bullet := range bullets {
		fmt.Fprintf(&sb, "<li>%s</li>", SanitizeRich(bullet.String()))
	}
	sb.WriteString(extra)
	sb.WriteString("</ul>")
	return sb.String()
}

// parenthetical renders " <span class=...>(text)</span>", or "" for empty text
func parenthetical(class, text string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf(` <span class="%s">(%s)</span>`, class, EscapeHTML(text))
}

func parentheticalRich(class, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return fmt.Sprintf(` <span class="%s">(%s)</span>`, class, SanitizeRich(text))
}
