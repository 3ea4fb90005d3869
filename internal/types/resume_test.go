package types

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeRecord_UnmarshalFullRecord(t *testing.T) {
	data := `{
		"name": "Sami Kazemi",
		"title": "Software Engineer",
		"pitch": "Builds things.",
		"contact": {"email": "sami@example.com", "phone": "+358 44 519 5357"},
		"technical_skills": {"Go": 90, "Python": "80"},
		"interpersonal_skills": ["Teamwork", {"name": "Leadership", "image": "lead.png"}],
		"languages": [{"name": "English", "level": "Fluent"}],
		"experience": [{"company": "Acme", "role": "Engineer", "period": "2020 - 2023", "bullets": ["Shipped"]}],
		"education": [{"degree": "MSc", "enabled": false}],
		"courses": [{"name": "Kubernetes", "period": 2021}],
		"projects": [{"name": "resume-site", "link": "https://example.com"}],
		"references": [{"name": "Jane", "title": "CTO", "email": "jane@example.com"}]
	}`

	var record ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(data), &record))

	want := ResumeRecord{
		Name:    "Sami Kazemi",
		Title:   "Software Engineer",
		Pitch:   "Builds things.",
		Contact: Contact{Email: "sami@example.com", Phone: "+358 44 519 5357"},
		TechnicalSkills: SkillLevels{
			{Name: "Go", Value: json.Number("90")},
			{Name: "Python", Value: "80"},
		},
		InterpersonalSkills: []InterpersonalSkill{
			{Name: "Teamwork"},
			{Name: "Leadership", Image: "lead.png"},
		},
		Languages: []Language{{Name: "English", Level: "Fluent"}},
		Experience: []ExperienceEntry{{
			Company: "Acme", Role: "Engineer", Period: "2020 - 2023", Bullets: []Text{"Shipped"},
		}},
		Education:  []EducationEntry{{Degree: "MSc", Enabled: Enabled(false)}},
		Courses:    []CourseEntry{{Name: "Kubernetes", Period: "2021"}},
		Projects:   []ProjectEntry{{Name: "resume-site", Link: "https://example.com"}},
		References: []Reference{{Name: "Jane", Title: "CTO", Email: "jane@example.com"}},
	}

	if diff := cmp.Diff(want, record, cmp.AllowUnexported(Switch{})); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestResumeRecord_EmptyObject(t *testing.T) {
	var record ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(`{}`), &record))

	assert.Equal(t, Text(""), record.Name)
	assert.Nil(t, record.TechnicalSkills)
	assert.Empty(t, record.EnabledExperience())
	assert.Empty(t, record.EnabledReferences())
}

func TestText_AcceptsScalars(t *testing.T) {
	tests := []struct {
		input string
		want  Text
	}{
		{`"hello"`, "hello"},
		{`2020`, "2020"},
		{`4.5`, "4.5"},
		{`true`, "true"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_RejectsComposite(t *testing.T) {
	var got Text
	err := json.Unmarshal([]byte(`["a"]`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array")
}

func TestSwitch_DefaultsToOn(t *testing.T) {
	var entry ExperienceEntry
	require.NoError(t, json.Unmarshal([]byte(`{"company": "Acme"}`), &entry))
	assert.True(t, entry.Enabled.On())
}

func TestSwitch_Truthiness(t *testing.T) {
	tests := []struct {
		input string
		on    bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`0`, false},
		{`1`, true},
		{`""`, false},
		{`"no"`, true},
		{`[]`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var entry ExperienceEntry
			require.NoError(t, json.Unmarshal([]byte(`{"enabled": `+tt.input+`}`), &entry))
			assert.Equal(t, tt.on, entry.Enabled.On())
		})
	}
}

func TestSwitch_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Enabled(false))
	require.NoError(t, err)
	assert.Equal(t, "false", string(out))
}

func TestSkillLevels_PreservesDocumentOrder(t *testing.T) {
	var levels SkillLevels
	require.NoError(t, json.Unmarshal([]byte(`{"Zig": 10, "Ada": 20, "Go": 30, "C": 40}`), &levels))

	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Zig", "Ada", "Go", "C"}, names)
}

func TestSkillLevels_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	var levels SkillLevels
	require.NoError(t, json.Unmarshal([]byte(`{"Go": 10, "Rust": 20, "Go": 99}`), &levels))

	require.Len(t, levels, 2)
	assert.Equal(t, "Go", levels[0].Name)
	assert.Equal(t, json.Number("99"), levels[0].Value)
	assert.Equal(t, "Rust", levels[1].Name)
}

func TestSkillLevels_Null(t *testing.T) {
	var levels SkillLevels
	require.NoError(t, json.Unmarshal([]byte(`null`), &levels))
	assert.Nil(t, levels)
}

func TestSkillLevels_RejectsArray(t *testing.T) {
	var levels SkillLevels
	err := json.Unmarshal([]byte(`["Go"]`), &levels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected object")
}

func TestInterpersonalSkill_BareValues(t *testing.T) {
	var skills []InterpersonalSkill
	require.NoError(t, json.Unmarshal([]byte(`["Empathy", 42, {"name": "Focus"}]`), &skills))

	require.Len(t, skills, 3)
	assert.Equal(t, Text("Empathy"), skills[0].Name)
	assert.Equal(t, Text("42"), skills[1].Name)
	assert.Equal(t, Text("Focus"), skills[2].Name)
	assert.Equal(t, Text(""), skills[2].Image)
}

func TestLanguage_BareName(t *testing.T) {
	var langs []Language
	require.NoError(t, json.Unmarshal([]byte(`["Finnish", {"name": "English", "level": "Native"}]`), &langs))

	require.Len(t, langs, 2)
	assert.Equal(t, Language{Name: "Finnish"}, langs[0])
	assert.Equal(t, Language{Name: "English", Level: "Native"}, langs[1])
}

func TestEducationEntry_HasThesis(t *testing.T) {
	assert.True(t, EducationEntry{ThesisTitle: "T", ThesisLink: "https://x"}.HasThesis())
	assert.False(t, EducationEntry{ThesisTitle: "T"}.HasThesis())
	assert.False(t, EducationEntry{ThesisLink: "https://x"}.HasThesis())
}

func TestFilterEnabled_PreservesOrder(t *testing.T) {
	record := ResumeRecord{
		Projects: []ProjectEntry{
			{Name: "a"},
			{Name: "b", Enabled: Enabled(false)},
			{Name: "c", Enabled: Enabled(true)},
		},
	}

	got := record.EnabledProjects()
	require.Len(t, got, 2)
	assert.Equal(t, Text("a"), got[0].Name)
	assert.Equal(t, Text("c"), got[1].Name)
}
