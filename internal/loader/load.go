package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jonathan/resume-site/internal/schemas"
	"github.com/jonathan/resume-site/internal/types"
)

// Format identifies the serialization of a résumé record
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension; anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, validates and decodes the résumé record at path.
// A missing file is reported as "missing required file".
func Load(path string) (*types.ResumeRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{
				Message: fmt.Sprintf("missing required file: %s", path),
				Cause:   err,
			}
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content, FormatFromPath(path))
}

// Parse validates and decodes an in-memory résumé record
func Parse(content []byte, format Format) (*types.ResumeRecord, error) {
	jsonContent, err := ToJSON(content, format)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateResume(jsonContent); err != nil {
		return nil, &LoadError{
			Message: "record does not match resume schema",
			Cause:   err,
		}
	}

	var record types.ResumeRecord
	dec := json.NewDecoder(bytes.NewReader(jsonContent))
	if err := dec.Decode(&record); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &record, nil
}

// ToJSON returns the record content as JSON. YAML is converted with its
// mapping order preserved so technical skills keep their document order.
func ToJSON(content []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return content, nil
	case FormatYAML:
		out, err := yaml.YAMLToJSON(content)
		if err != nil {
			return nil, &LoadError{
				Message: "failed to convert YAML to JSON",
				Cause:   err,
			}
		}
		return out, nil
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}
}
