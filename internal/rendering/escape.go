package rendering

import (
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// tokenGuard breaks up "{{" so no fragment can contain a placeholder token
var tokenGuard = strings.NewReplacer("{{", "&#123;&#123;")

var (
	richPolicyOnce sync.Once
	richPolicy     *bluemonday.Policy
)

// EscapeHTML escapes plain text for use in element content or quoted attributes
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return tokenGuard.Replace(html.EscapeString(text))
}

// SanitizeRich keeps the inline markup allowed in user-generated content
// (links, emphasis, lists) and strips everything else.
func SanitizeRich(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	return tokenGuard.Replace(richSanitizer().Sanitize(trimmed))
}

// SafeURL escapes a link target for an href attribute. Empty values and
// script-capable schemes become fallback.
func SafeURL(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}

	if u, err := url.Parse(trimmed); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "javascript", "vbscript", "data":
			return fallback
		}
	} else if strings.Contains(strings.ToLower(trimmed), "script:") {
		return fallback
	}

	return EscapeHTML(trimmed)
}

func richSanitizer() *bluemonday.Policy {
	richPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("target").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
		richPolicy = policy
	})
	return richPolicy
}
