// Package types provides type definitions for structured data used throughout the resume-site system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured personal/professional data driving a render.
// Every field is optional; absent text decodes to "" and absent lists to nil.
type ResumeRecord struct {
	Name                Text                 `json:"name"`
	Title               Text                 `json:"title"`
	Pitch               Text                 `json:"pitch"`
	Contact             Contact              `json:"contact"`
	TechnicalSkills     SkillLevels          `json:"technical_skills"`
	InterpersonalSkills []InterpersonalSkill `json:"interpersonal_skills"`
	Languages           []Language           `json:"languages"`
	Experience          []ExperienceEntry    `json:"experience"`
	Education           []EducationEntry     `json:"education"`
	Courses             []CourseEntry        `json:"courses"`
	Projects            []ProjectEntry       `json:"projects"`
	References          []Reference          `json:"references"`
}

// Contact holds the raw contact fields as they appear in the record
type Contact struct {
	Email    Text `json:"email"`
	Phone    Text `json:"phone"`
	Location Text `json:"location"`
	Website  Text `json:"website"`
	LinkedIn Text `json:"linkedin"`
	GitHub   Text `json:"github"`
}

// ExperienceEntry represents a single position in the experience section
type ExperienceEntry struct {
	Enabled Switch `json:"enabled"`
	Logo    Text   `json:"logo"`
	Company Text   `json:"company"`
	Role    Text   `json:"role"`
	Period  Text   `json:"period"`
	Bullets []Text `json:"bullets"`
}

// EducationEntry represents a degree in the education section.
// A thesis bullet is rendered only when both ThesisTitle and ThesisLink are set.
type EducationEntry struct {
	Enabled     Switch `json:"enabled"`
	Logo        Text   `json:"logo"`
	Degree      Text   `json:"degree"`
	Institution Text   `json:"institution"`
	Period      Text   `json:"period"`
	Field       Text   `json:"field"`
	Notes       Text   `json:"notes"`
	Bullets     []Text `json:"bullets"`
	ThesisTitle Text   `json:"thesis_title"`
	ThesisLink  Text   `json:"thesis_link"`
}

// HasThesis reports whether both thesis fields are present
func (e EducationEntry) HasThesis() bool {
	return e.ThesisTitle != "" && e.ThesisLink != ""
}

// CourseEntry represents a completed course or certificate
type CourseEntry struct {
	Enabled Switch `json:"enabled"`
	Logo    Text   `json:"logo"`
	Name    Text   `json:"name"`
	Period  Text   `json:"period"`
}

// ProjectEntry represents a side project; Link defaults to "#" at render time
type ProjectEntry struct {
	Enabled Switch `json:"enabled"`
	Logo    Text   `json:"logo"`
	Name    Text   `json:"name"`
	Period  Text   `json:"period"`
	Link    Text   `json:"link"`
}

// Reference represents a person listed as a reference
type Reference struct {
	Enabled Switch `json:"enabled"`
	Name    Text   `json:"name"`
	Title   Text   `json:"title"`
	Email   Text   `json:"email"`
}

// SkillLevel is a single technical skill with its raw proficiency value.
// Value holds the decoded JSON value (json.Number, string, bool, nil, ...);
// coercion to a percentage happens at render time.
type SkillLevel struct {
	Name  string
	Value any
}

// SkillLevels is the technical skills mapping in document order
type SkillLevels []SkillLevel

// InterpersonalSkill is one entry of the interpersonal skills grid.
// Image is the asset filename; when empty a name-derived default is used.
type InterpersonalSkill struct {
	Name  Text `json:"name"`
	Image Text `json:"image"`
}

// Language is a spoken language and its textual level (e.g. "Fluent")
type Language struct {
	Name  Text `json:"name"`
	Level Text `json:"level"`
}

// EnabledExperience returns the experience entries whose enabled flag is on, in input order
func (r *ResumeRecord) EnabledExperience() []ExperienceEntry {
	return FilterEnabled(r.Experience, func(e ExperienceEntry) Switch { return e.Enabled })
}

// EnabledEducation returns the enabled education entries in input order
func (r *ResumeRecord) EnabledEducation() []EducationEntry {
	return FilterEnabled(r.Education, func(e EducationEntry) Switch { return e.Enabled })
}

// EnabledCourses returns the enabled course entries in input order
func (r *ResumeRecord) EnabledCourses() []CourseEntry {
	return FilterEnabled(r.Courses, func(e CourseEntry) Switch { return e.Enabled })
}

// EnabledProjects returns the enabled project entries in input order
func (r *ResumeRecord) EnabledProjects() []ProjectEntry {
	return FilterEnabled(r.Projects, func(e ProjectEntry) Switch { return e.Enabled })
}

// EnabledReferences returns the enabled references in input order
func (r *ResumeRecord) EnabledReferences() []Reference {
	return FilterEnabled(r.References, func(e Reference) Switch { return e.Enabled })
}

// FilterEnabled keeps the entries whose flag is on, preserving order
func FilterEnabled[T any](entries []T, flag func(T) Switch) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if flag(e).On() {
			out = append(out, e)
		}
	}
	return out
}
