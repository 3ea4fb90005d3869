package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/types"
)

func TestExperience_DisabledEntriesExcluded(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.Experience([]types.ExperienceEntry{
		{Company: "Acme", Role: "Engineer", Period: "2020 - 2023"},
		{Company: "Secret Corp", Enabled: types.Enabled(false)},
		{Company: "Globex", Enabled: types.Enabled(true)},
	})

	doc := parseFragment(t, out)
	require.Equal(t, 2, doc.Find(".exp-entry").Length())
	assert.NotContains(t, out, "Secret Corp")
	assert.Equal(t, "Acme (2020 - 2023)", doc.Find(".exp-company").First().Text())
	assert.Equal(t, "Engineer", doc.Find(".exp-role").First().Text())
	assert.Equal(t, "Globex", doc.Find(".exp-company").Last().Text())
}

func TestExperience_EmptyListPlaceholder(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.Experience(nil)
	assert.Contains(t, out, "No experience listed")
	assert.True(t, strings.HasPrefix(out, "<p "))
}

func TestExperience_AllDisabledPlaceholder(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.Experience([]types.ExperienceEntry{{Company: "Acme", Enabled: types.Enabled(false)}})
	assert.Equal(t, NonePlaceholder(NoExperienceMessage), out)
}

func TestExperience_Bullets(t *testing.T) {
	r := newTestRenderer(t, nil)
	doc := parseFragment(t, r.Experience([]types.ExperienceEntry{
		{Company: "Acme", Bullets: []types.Text{"Built the pipeline", "Cut latency by <b>40%</b>"}},
		{Company: "Globex"},
	}))

	entries := doc.Find(".exp-entry")
	bullets := entries.First().Find("ul.exp-bullets li")
	require.Equal(t, 2, bullets.Length())
	assert.Equal(t, "Built the pipeline", bullets.First().Text())
	assert.Equal(t, "40%", bullets.Last().Find("b").Text())

	assert.Equal(t, 0, entries.Last().Find("ul").Length(), "entry without bullets has no list")
}

func TestExperience_Logo(t *testing.T) {
	r := newTestRenderer(t, map[string][]byte{"acme.png": pngBytes})
	doc := parseFragment(t, r.Experience([]types.ExperienceEntry{
		{Company: "Acme", Logo: "acme.png"},
		{Company: "Globex", Logo: "missing.png"},
	}))

	logos := doc.Find(".exp-logo img")
	require.Equal(t, 1, logos.Length())
	alt, _ := logos.Attr("alt")
	assert.Equal(t, "Acme", alt)
}

func TestExperience_EscapesPlainFields(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.Experience([]types.ExperienceEntry{{Company: "<script>alert(1)</script>", Role: "{{NAME}}"}})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "{{NAME}}")
}

func TestEducation_ThesisBullet(t *testing.T) {
	r := newTestRenderer(t, nil)
	doc := parseFragment(t, r.Education([]types.EducationEntry{{
		Degree:      "MSc Computer Science",
		Institution: "Aalto University",
		Bullets:     []types.Text{"Graduated with honors"},
		ThesisTitle: "Streaming Joins",
		ThesisLink:  "https://example.com/thesis.pdf",
	}}))

	items := doc.Find("ul.edu-bullets li")
	require.Equal(t, 2, items.Length())

	links := doc.Find("a.thesis-link")
	require.Equal(t, 1, links.Length())
	href, _ := links.Attr("href")
	assert.Equal(t, "https://example.com/thesis.pdf", href)
	assert.Equal(t, "Streaming Joins", links.Text())
	assert.True(t, strings.HasPrefix(items.Last().Text(), "Thesis: "))
}

func TestEducation_ThesisRequiresBothFields(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.Education([]types.EducationEntry{
		{Degree: "BSc", ThesisTitle: "Only a title"},
		{Degree: "MSc", ThesisLink: "https://example.com/only-link"},
	})

	doc := parseFragment(t, out)
	assert.Equal(t, 2, doc.Find(".edu-entry").Length())
	assert.Equal(t, 0, doc.Find("a.thesis-link").Length())
	assert.Equal(t, 0, doc.Find("ul").Length())
	assert.NotContains(t, out, "Thesis:")
}

func TestEducation_ThesisOnlyCreatesList(t *testing.T) {
	r := newTestRenderer(t, nil)
	doc := parseFragment(t, r.Education([]types.EducationEntry{
		{Degree: "PhD", ThesisTitle: "T", ThesisLink: "https://example.com/t"},
	}))

	assert.Equal(t, 1, doc.Find("ul.edu-bullets li").Length())
}

func TestEducation_FieldsAndNotes(t *testing.T) {
	r := newTestRenderer(t, nil)
	doc := parseFragment(t, r.Education([]types.EducationEntry{
		{Degree: "MSc", Institution: "Aalto", Period: "2018 - 2020", Field: "Data Science", Notes: "GPA 4.8/5"},
		{Degree: "BSc", Institution: "Tehran"},
	}))

	entries := doc.Find(".edu-entry")
	assert.Equal(t, "Aalto (2018 - 2020)", entries.First().Find(".edu-institution").Text())
	assert.Equal(t, "Data Science (GPA 4.8/5)", entries.First().Find(".edu-field").Text())
	assert.Equal(t, 0, entries.Last().Find(".edu-notes").Length())
	assert.Equal(t, 0, entries.Last().Find(".edu-year").Length())
}

func TestEducation_Placeholder(t *testing.T) {
	r := newTestRenderer(t, nil)
	assert.Contains(t, r.Education(nil), "No education listed")
	assert.Contains(t, r.Education([]types.EducationEntry{{Enabled: types.Enabled(false)}}), "No education listed")
}

func TestCourses_BadgeAndLogo(t *testing.T) {
	r := newTestRenderer(t, map[string][]byte{"badge.png": pngBytes, "k8s.png": pngBytes})
	doc := parseFragment(t, r.Courses([]types.CourseEntry{
		{Name: "Kubernetes", Period: "2022", Logo: "k8s.png"},
		{Name: "Hidden", Enabled: types.Enabled(false)},
		{Name: "Terraform", Period: "2023"},
	}))

	items := doc.Find(".courses-row .course-item")
	require.Equal(t, 2, items.Length())

	style, ok := items.First().Find(".course-badge").Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "background-image:url('data:image/png;base64,")

	assert.Equal(t, 1, items.First().Find("img.course-logo-inside").Length())
	assert.Equal(t, 0, items.Last().Find("img").Length())
	assert.Equal(t, "Terraform", items.Last().Find(".course-name").Text())
	assert.Equal(t, "2023", items.Last().Find(".course-year").Text())
}

func TestCourses_NoBadgeAsset(t *testing.T) {
	r := newTestRenderer(t, nil)
	doc := parseFragment(t, r.Courses([]types.CourseEntry{{Name: "Go"}}))

	_, ok := doc.Find(".course-badge").Attr("style")
	assert.False(t, ok)
}

func TestCourses_Placeholder(t *testing.T) {
	r := newTestRenderer(t, nil)
	assert.Equal(t, NonePlaceholder(NoCoursesMessage), r.Courses(nil))
}

func TestProjects_Links(t *testing.T) {
	r := newTestRenderer(t, nil)
	doc := parseFragment(t, r.Projects([]types.ProjectEntry{
		{Name: "resume-site", Link: "https://github.com/example/resume-site", Period: "2024"},
		{Name: "no-link"},
		{Name: "evil", Link: "javascript:alert(1)"},
	}))

	links := doc.Find("a.project-name").Map(func(_ int, s *goquery.Selection) string {
		href, _ := s.Attr("href")
		return href
	})
	assert.Equal(t, []string{"https://github.com/example/resume-site", "#", "#"}, links)
	assert.Equal(t, "2024", doc.Find(".project-year").First().Text())
}

func TestProjects_Placeholder(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.Projects([]types.ProjectEntry{{Name: "x", Enabled: types.Enabled(false)}})
	assert.Contains(t, out, "No projects listed")
	assert.NotContains(t, out, "courses-row")
}

func TestReferences_MailtoLinks(t *testing.T) {
	r := newTestRenderer(t, nil)
	out := r.References([]types.Reference{
		{Name: "Jane Doe", Title: "CTO", Email: "jane@example.com"},
		{Name: "Hidden", Title: "CEO", Email: "hidden@example.com", Enabled: types.Enabled(false)},
	})

	assert.Equal(t,
		"<ul class='reference-list'><li><a class='reference-link' href='mailto:jane@example.com'>Jane Doe (CTO)</a></li></ul>",
		out)
}

func TestReferences_AvailableUponRequest(t *testing.T) {
	r := newTestRenderer(t, nil)

	for name, refs := range map[string][]types.Reference{
		"empty":    nil,
		"filtered": {{Name: "Jane", Enabled: types.Enabled(false)}},
	} {
		t.Run(name, func(t *testing.T) {
			out := r.References(refs)
			assert.Contains(t, out, "Available upon request")
			assert.NotContains(t, out, "<ul")
		})
	}
}

func TestPitch_SanitizesInlineHTML(t *testing.T) {
	r := newTestRenderer(t, nil)
	out, err := r.Pitch(`I build <strong>data platforms</strong>.<script>alert(1)</script>`)
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>data platforms</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestPitch_Markdown(t *testing.T) {
	r := newTestRenderer(t, nil, WithMarkdownPitch(true))
	out, err := r.Pitch("I build **data platforms**.")
	require.NoError(t, err)

	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "<strong>data platforms</strong>")
}

func TestPitch_PlainTextUnchanged(t *testing.T) {
	r := newTestRenderer(t, nil)
	out, err := r.Pitch("Engineer who ships.")
	require.NoError(t, err)
	assert.Equal(t, "Engineer who ships.", out)
}

func TestPitch_NeutralizesPlaceholderTokens(t *testing.T) {
	r := newTestRenderer(t, nil)
	out, err := r.Pitch("Hello {{NAME}}")
	require.NoError(t, err)
	assert.NotContains(t, out, "{{")
}
