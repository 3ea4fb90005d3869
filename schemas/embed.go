// Package schemas holds the JSON Schemas for the data files consumed by resume-site.
package schemas

import _ "embed"

// ResumeSchema is the JSON Schema for a résumé record (resume.schema.json)
//
//go:embed resume.schema.json
var ResumeSchema string
