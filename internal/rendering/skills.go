package rendering

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-site/internal/assets"
	"github.com/jonathan/resume-site/internal/types"
)

// ParsePercent coerces a raw skill value to an integer percent. Numbers and
// numeric strings are truncated toward zero ("42.7" -> 42); booleans count
// as 1 or 0; anything else, including NaN and infinities, yields fallback.
// Out-of-range values are returned as-is.
func ParsePercent(raw any, fallback int) int {
	switch v := raw.(type) {
	case json.Number:
		return parseNumericText(v.String(), fallback)
	case string:
		return parseNumericText(v, fallback)
	case float64:
		return truncate(v, fallback)
	case float32:
		return truncate(float64(v), fallback)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return truncate(float64(v), fallback)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return fallback
	}
}

func parseNumericText(s string, fallback int) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return truncate(f, fallback)
}

func truncate(f float64, fallback int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return fallback
	}
	return int(f)
}

// TechnicalSkills renders one labeled progress bar per skill, in input order
func (r *Renderer) TechnicalSkills(skills types.SkillLevels) string {
	var sb strings.Builder
	for _, skill := range skills {
		percent := ParsePercent(skill.Value, r.skillDefault)
		fmt.Fprintf(&sb,
			"<div class='skill-item'>"+
				"<div class='skill-label'><span>%s</span><span>%d%%</span></div>"+
				"<div class='skill-bar-container'><div class='skill-bar-fill' style='width: %d%%;'></div></div>"+
				"</div>",
			EscapeHTML(skill.Name), percent, percent)
	}
	return sb.String()
}

// SkillImageName is the default image filename for an interpersonal skill:
// the lower-cased name with spaces replaced by hyphens, plus ".png".
func SkillImageName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-") + ".png"
}

// InterpersonalSkills renders the first few skills as image circles.
// Missing images use the generic "?" box.
func (r *Renderer) InterpersonalSkills(skills []types.InterpersonalSkill) string {
	var sb strings.Builder
	sb.WriteString("<div class='interpersonal-grid'>")

	for i, skill := range skills {
		if i >= r.maxInterpersonal {
			break
		}

		name := skill.Name.String()
		if name == "" {
			name = "Skill"
		}
		image := skill.Image.String()
		if image == "" {
			image = SkillImageName(name)
		}

		img := assets.UnknownImage()
		if r.assets != nil {
			img = r.assets.SkillImage(image, name)
		}

		fmt.Fprintf(&sb,
			"<div class='skill-circle-item'>"+
				"<div class='skill-circle'>%s</div>"+
				"<p class='skill-circle-name'>%s</p>"+
				"</div>",
			img, EscapeHTML(name))
	}

	sb.WriteString("</div>")
	return sb.String()
}

// Languages renders the first few languages as percent bars
func (r *Renderer) Languages(languages []types.Language) string {
	var sb strings.Builder
	for i, lang := range languages {
		if i >= r.maxLanguages {
			break
		}

		name := lang.Name.String()
		if name == "" {
			name = "Language"
		}
		percent := r.LevelPercent(lang.Level.String())

		fmt.Fprintf(&sb,
			`<div class="language-box">`+
				`<div class="language-name-part">%s</div>`+
				`<div class="language-progress-part">`+
				`<div class="language-progress-fill" style="width: %d%%;"></div>`+
				`<div class="language-progress-percent">%d%%</div>`+
				`</div></div>`,
			EscapeHTML(name), percent, percent)
	}
	return sb.String()
}
