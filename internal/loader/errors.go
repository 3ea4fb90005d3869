// Package loader reads résumé records from JSON or YAML files.
package loader

import "fmt"

// LoadError represents an error during file I/O, format conversion or decoding.
// Any LoadError is fatal: no rendering happens after one.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
