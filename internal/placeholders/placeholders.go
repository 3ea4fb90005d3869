// Package placeholders assembles the final document by replacing {{KEY}}
// tokens in a template with rendered values.
//
// Substitution is a single literal pass over the template. Values are never
// rescanned, so a value that itself contains a token is emitted verbatim and
// not expanded. Tokens outside the vocabulary, or keys without a value, are
// left in place unless SubstituteStrict is used.
package placeholders

import (
	"regexp"
	"slices"
	"strings"
)

// Key names a placeholder in the document template
type Key string

// The closed placeholder vocabulary of the document template
const (
	InlineCSS           Key = "INLINE_CSS"
	ImgTag              Key = "IMG_TAG"
	Name                Key = "NAME"
	Title               Key = "TITLE"
	Email               Key = "EMAIL"
	Phone               Key = "PHONE"
	PhoneE164           Key = "PHONE_E164"
	Location            Key = "LOCATION"
	Website             Key = "WEBSITE"
	LinkedIn            Key = "LINKEDIN"
	GitHub              Key = "GITHUB"
	References          Key = "REFERENCES"
	Pitch               Key = "PITCH"
	Experience          Key = "EXPERIENCE"
	Education           Key = "EDUCATION"
	Courses             Key = "COURSES"
	Projects            Key = "PROJECTS"
	TechnicalSkills     Key = "TECHNICAL_SKILLS"
	InterpersonalSkills Key = "INTERPERSONAL_SKILLS"
	LanguagesRight      Key = "LANGUAGES_RIGHT"
)

// Keys lists the vocabulary in template order
var Keys = []Key{
	InlineCSS, ImgTag, Name, Title, Email, Phone, PhoneE164, Location, Website, LinkedIn,
	GitHub, References, Pitch, Experience, Education, Courses, Projects, TechnicalSkills,
	InterpersonalSkills, LanguagesRight,
}

// tokenPattern matches any {{IDENT}} token, known or not
var tokenPattern = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)

// Values maps placeholders to their replacement text
type Values map[Key]string

// Token returns the template token for key, e.g. "{{NAME}}"
func Token(key Key) string {
	return "{{" + string(key) + "}}"
}

// IsKnown reports whether key belongs to the vocabulary
func IsKnown(key Key) bool {
	return slices.Contains(Keys, key)
}

// Substitute replaces every occurrence of each mapped token in a single pass
func Substitute(template string, values Values) string {
	keys := make([]Key, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	// Tokens are disjoint, so order never changes the result; sorting keeps
	// the replacer construction deterministic.
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, Token(key), values[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// SubstituteStrict is Substitute that fails on an incomplete mapping or on
// any {{IDENT}} token left in the template after substitution.
func SubstituteStrict(template string, values Values) (string, error) {
	if missing := Missing(values); len(missing) > 0 {
		return "", &IncompleteMappingError{Missing: missing}
	}

	if leftover := unmappedTokens(template, values); len(leftover) > 0 {
		return "", &UnresolvedPlaceholderError{Tokens: leftover}
	}

	return Substitute(template, values), nil
}

// Missing returns the vocabulary keys that have no value, in vocabulary order
func Missing(values Values) []Key {
	var missing []Key
	for _, key := range Keys {
		if _, ok := values[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Tokens returns the distinct {{IDENT}} identifiers in text, in order of first appearance
func Tokens(text string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}

// CheckTemplate compares a template against the vocabulary. missing lists
// keys the template never uses; unknown lists tokens outside the vocabulary.
func CheckTemplate(template string) (missing []Key, unknown []string) {
	used := make(map[Key]bool)
	for _, token := range Tokens(template) {
		key := Key(token)
		if IsKnown(key) {
			used[key] = true
		} else {
			unknown = append(unknown, token)
		}
	}

	for _, key := range Keys {
		if !used[key] {
			missing = append(missing, key)
		}
	}
	return missing, unknown
}

func unmappedTokens(template string, values Values) []string {
	var leftover []string
	for _, token := range Tokens(template) {
		if _, ok := values[Key(token)]; !ok {
			leftover = append(leftover, token)
		}
	}
	return leftover
}
