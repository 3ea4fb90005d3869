// Package site provides the built-in document template and stylesheet used
// when no custom files are given.
package site

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed static/index.html
var defaultTemplate string

//go:embed static/style.css
var defaultStylesheet string

// DefaultTemplate returns the built-in HTML template
func DefaultTemplate() string {
	return defaultTemplate
}

// DefaultStylesheet returns the built-in stylesheet
func DefaultStylesheet() string {
	return defaultStylesheet
}

// LoadTemplate reads the template at path, or returns the built-in one for ""
func LoadTemplate(path string) (string, error) {
	return readOrDefault(path, defaultTemplate, "template")
}

// LoadStylesheet reads the stylesheet at path, or returns the built-in one for ""
func LoadStylesheet(path string) (string, error) {
	return readOrDefault(path, defaultStylesheet, "stylesheet")
}

func readOrDefault(path, fallback, kind string) (string, error) {
	if path == "" {
		return fallback, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s: %w", kind, path, err)
	}
	return string(content), nil
}
