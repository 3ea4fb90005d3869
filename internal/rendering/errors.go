// Package rendering turns résumé sections into HTML fragments.
package rendering

import "fmt"

// RenderError represents a fragment that could not be produced.
// Field-level problems never surface as RenderError; they fall back to defaults.
type RenderError struct {
	Section string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %s: %v", e.Section, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s: %s", e.Section, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
