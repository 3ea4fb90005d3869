package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a tolerant string field. Besides JSON strings it accepts numbers
// (kept in their literal form), booleans and null (decoded as "").
type Text string

// String returns the text as a plain string
func (t Text) String() string {
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	v, err := decodeAny(data)
	if err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(val)
	case json.Number:
		*t = Text(val.String())
	case bool:
		*t = Text(strconv.FormatBool(val))
	default:
		return fmt.Errorf("expected text value, got %s", describeJSON(v))
	}
	return nil
}

// Switch is a per-entry enabled flag. The zero value is on, so entries
// without an "enabled" key are rendered.
type Switch struct {
	off bool
}

// Enabled builds a Switch with the given state
func Enabled(on bool) Switch {
	return Switch{off: !on}
}

// On reports whether the entry should be rendered
func (s Switch) On() bool {
	return !s.off
}

// UnmarshalJSON implements json.Unmarshaler. Any falsy JSON value
// (false, null, 0, "", [], {}) turns the switch off.
func (s *Switch) UnmarshalJSON(data []byte) error {
	v, err := decodeAny(data)
	if err != nil {
		return err
	}
	s.off = !truthy(v)
	return nil
}

// MarshalJSON implements json.Marshaler
func (s Switch) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.On())
}

// UnmarshalJSON decodes a JSON object into ordered skill levels.
// A repeated key keeps its first position and takes the last value.
func (s *SkillLevels) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("technical_skills: %w", err)
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("technical_skills: expected object, got %v", tok)
	}

	levels := SkillLevels{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("technical_skills: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("technical_skills: unexpected key %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("technical_skills[%s]: %w", key, err)
		}

		if i, seen := index[key]; seen {
			levels[i].Value = value
			continue
		}
		index[key] = len(levels)
		levels = append(levels, SkillLevel{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("technical_skills: %w", err)
	}

	*s = levels
	return nil
}

// UnmarshalJSON accepts either a bare name or an object with name and image
func (s *InterpersonalSkill) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		type plain InterpersonalSkill
		var p plain
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return fmt.Errorf("interpersonal skill: %w", err)
		}
		*s = InterpersonalSkill(p)
		return nil
	}

	var name Text
	if err := json.Unmarshal(trimmed, &name); err != nil {
		return fmt.Errorf("interpersonal skill: %w", err)
	}
	*s = InterpersonalSkill{Name: name}
	return nil
}

// UnmarshalJSON accepts either a bare name or an object with name and level
func (l *Language) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		type plain Language
		var p plain
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return fmt.Errorf("language: %w", err)
		}
		*l = Language(p)
		return nil
	}

	var name Text
	if err := json.Unmarshal(trimmed, &name); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	*l = Language{Name: name}
	return nil
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

func describeJSON(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
