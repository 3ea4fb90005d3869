package placeholders

import (
	"fmt"
	"strings"
)

// IncompleteMappingError reports vocabulary keys that were given no value
type IncompleteMappingError struct {
	Missing []Key
}

func (e *IncompleteMappingError) Error() string {
	names := make([]string, len(e.Missing))
	for i, key := range e.Missing {
		names[i] = string(key)
	}
	return fmt.Sprintf("placeholder mapping incomplete: missing %s", strings.Join(names, ", "))
}

// UnresolvedPlaceholderError reports template tokens that would survive substitution
type UnresolvedPlaceholderError struct {
	Tokens []string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("template has unresolved placeholders: %s", strings.Join(e.Tokens, ", "))
}
