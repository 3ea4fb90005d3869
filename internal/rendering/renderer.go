package rendering

import (
	"maps"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jonathan/resume-site/internal/assets"
)

const (
	// DefaultSkillPercent is used when a technical skill value is not numeric
	DefaultSkillPercent = 85
	// UnknownLevelPercent is used for language levels missing from the level table
	UnknownLevelPercent = 60
	// MaxInterpersonalSkills is the number of skill circles shown
	MaxInterpersonalSkills = 4
	// MaxLanguages is the number of language bars shown
	MaxLanguages = 3
	// DefaultCourseBadge is the background image shared by all course badges
	DefaultCourseBadge = "badge.png"
)

// DefaultLanguageLevels returns a fresh copy of the level-to-percent table.
// Matching is case-sensitive.
func DefaultLanguageLevels() map[string]int {
	return map[string]int{
		"Proficient":    90,
		"Fluent":        95,
		"Intermediate":  60,
		"Mother tongue": 100,
		"Native":        100,
		"Basic":         40,
	}
}

// Renderer produces the HTML fragment for each résumé section.
// All lookup tables and defaults are held explicitly on the Renderer.
type Renderer struct {
	assets           *assets.Embedder
	skillDefault     int
	languageLevels   map[string]int
	unknownLevel     int
	maxInterpersonal int
	maxLanguages     int
	courseBadge      string
	markdownPitch    bool
	markdown         goldmark.Markdown
}

// Option configures a Renderer
type Option func(*Renderer)

// WithDefaultSkillPercent overrides the fallback for non-numeric skill values
func WithDefaultSkillPercent(percent int) Option {
	return func(r *Renderer) { r.skillDefault = percent }
}

// WithLanguageLevels replaces the level table and the percent used for unknown levels
func WithLanguageLevels(levels map[string]int, unknown int) Option {
	return func(r *Renderer) {
		r.languageLevels = maps.Clone(levels)
		r.unknownLevel = unknown
	}
}

// WithCourseBadge sets the asset used as the course badge background; "" disables it
func WithCourseBadge(name string) Option {
	return func(r *Renderer) { r.courseBadge = name }
}

// WithMarkdownPitch renders the pitch as Markdown instead of inline HTML
func WithMarkdownPitch(enabled bool) Option {
	return func(r *Renderer) { r.markdownPitch = enabled }
}

// NewRenderer creates a Renderer that embeds images through emb
func NewRenderer(emb *assets.Embedder, opts ...Option) *Renderer {
	r := &Renderer{
		assets:           emb,
		skillDefault:     DefaultSkillPercent,
		languageLevels:   DefaultLanguageLevels(),
		unknownLevel:     UnknownLevelPercent,
		maxInterpersonal: MaxInterpersonalSkills,
		maxLanguages:     MaxLanguages,
		courseBadge:      DefaultCourseBadge,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LevelPercent maps a language level through the level table
func (r *Renderer) LevelPercent(level string) int {
	if percent, ok := r.languageLevels[level]; ok {
		return percent
	}
	return r.unknownLevel
}

// logo embeds an optional logo image; ok is false when there is nothing to show
func (r *Renderer) logo(name, alt, class string) (string, bool) {
	if r.assets == nil || name == "" {
		return "", false
	}
	return r.assets.Image(name, assets.ImageOptions{Alt: alt, Class: class})
}

// Avatar renders the profile picture, falling back to an initials badge
func (r *Renderer) Avatar(spec assets.AvatarSpec) string {
	if r.assets == nil {
		return assets.InitialsBadge(spec.Name)
	}
	return r.assets.Avatar(spec)
}
