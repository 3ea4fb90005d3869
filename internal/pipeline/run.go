// Package pipeline provides the high-level orchestration for rendering a résumé site.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/resume-site/internal/assets"
	"github.com/jonathan/resume-site/internal/contact"
	"github.com/jonathan/resume-site/internal/loader"
	"github.com/jonathan/resume-site/internal/observability"
	"github.com/jonathan/resume-site/internal/placeholders"
	"github.com/jonathan/resume-site/internal/rendering"
	"github.com/jonathan/resume-site/internal/site"
	"github.com/jonathan/resume-site/internal/types"
)

const (
	// DefaultAssetDir is the directory holding images and the avatar video
	DefaultAssetDir = "img"
	// DefaultAvatarImage is the profile picture looked up in the asset directory
	DefaultAvatarImage = "pic1.jpg"
	// DefaultAvatarVideo is the profile video looked up when video is enabled
	DefaultAvatarVideo = "video.mp4"
)

// ProgressEvent represents a progress update during a render
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when render progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a single render
type RunOptions struct {
	DataPath       string
	Record         *types.ResumeRecord // Optional: direct data injection, skips DataPath
	TemplatePath   string              // "" selects the built-in template
	StylesheetPath string              // "" selects the built-in stylesheet
	AssetDir       string
	AvatarImage    string
	AvatarVideo    string
	UseVideo       bool
	CourseBadge    *string // nil keeps the default badge, "" disables it
	MarkdownPitch  bool
	Strict         bool
	Verbose        bool
	Status         io.Writer // step status lines; nil silences them
	OnProgress     ProgressCallback
}

// Result is the outcome of a successful render
type Result struct {
	HTML   string
	Record *types.ResumeRecord
	Values placeholders.Values
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress == nil {
		return
	}

	var category string
	if i := stepIndex(step); i > 0 {
		category = Steps[i-1].Category
	}
	opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: category,
		Message:  message,
		Content:  content,
	})
}

// status prints a "Step i/N" line for a step
//
//nolint:errcheck // status output is best effort
func status(opts *RunOptions, step, detail string) {
	if opts.Status == nil {
		return
	}
	i := stepIndex(step)
	line := Steps[i-1].Description
	if detail != "" {
		line += ": " + detail
	}
	fmt.Fprintf(opts.Status, "Step %d/%d: %s...\n", i, len(Steps), line)
}

// Run loads the record, renders every section and fills the template.
// A record that cannot be loaded is fatal and no document is produced.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var printer *observability.Printer
	if opts.Verbose && opts.Status != nil {
		printer = observability.NewPrinter(opts.Status)
	}

	// Step 1: record
	record := opts.Record
	if record == nil {
		status(&opts, "load_record", opts.DataPath)
		emitProgress(&opts, "load_record", fmt.Sprintf("Loading %s", opts.DataPath), nil)

		var err error
		record, err = loader.Load(opts.DataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume record: %w", err)
		}
	} else {
		status(&opts, "load_record", "using provided record")
		emitProgress(&opts, "load_record", "Using provided record", nil)
	}
	if printer != nil {
		printer.PrintRecord(record)
	}

	// Step 2: template and stylesheet
	status(&opts, "load_template", "")
	emitProgress(&opts, "load_template", "Loading template and stylesheet", nil)

	template, err := site.LoadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	css, err := site.LoadStylesheet(opts.StylesheetPath)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: sections
	status(&opts, "render_sections", "")
	emitProgress(&opts, "render_sections", "Rendering sections", nil)

	renderer := NewRenderer(opts)
	values, err := BuildValues(record, renderer, css, opts)
	if err != nil {
		return nil, err
	}

	// Step 4: substitution
	status(&opts, "substitute", "")
	var html string
	if opts.Strict {
		html, err = placeholders.SubstituteStrict(template, values)
		if err != nil {
			return nil, fmt.Errorf("template substitution failed: %w", err)
		}
	} else {
		html = placeholders.Substitute(template, values)
	}
	emitProgress(&opts, "substitute", "Document rendered", map[string]int{"bytes": len(html)})

	if printer != nil {
		if summary, err := observability.Summarize(html); err == nil {
			printer.PrintRenderSummary(summary)
		}
	}

	return &Result{HTML: html, Record: record, Values: values}, nil
}

// NewRenderer builds the section renderer for the asset directory in opts
func NewRenderer(opts RunOptions) *rendering.Renderer {
	rendererOpts := []rendering.Option{rendering.WithMarkdownPitch(opts.MarkdownPitch)}
	if opts.CourseBadge != nil {
		rendererOpts = append(rendererOpts, rendering.WithCourseBadge(*opts.CourseBadge))
	}
	return rendering.NewRenderer(assets.NewEmbedder(orDefault(opts.AssetDir, DefaultAssetDir)), rendererOpts...)
}

// BuildValues assembles the value for every placeholder from the record.
// Plain text is escaped, links are checked for unsafe schemes and the
// stylesheet is wrapped in a style block.
func BuildValues(record *types.ResumeRecord, r *rendering.Renderer, css string, opts RunOptions) (placeholders.Values, error) {
	if record == nil {
		record = &types.ResumeRecord{}
	}

	pitch, err := r.Pitch(record.Pitch.String())
	if err != nil {
		return nil, err
	}

	fields := contact.Normalize(record.Contact)
	name := record.Name.String()

	return placeholders.Values{
		placeholders.InlineCSS: "<style>" + css + "</style>",
		placeholders.ImgTag: r.Avatar(assets.AvatarSpec{
			Image:    orDefault(opts.AvatarImage, DefaultAvatarImage),
			Video:    orDefault(opts.AvatarVideo, DefaultAvatarVideo),
			UseVideo: opts.UseVideo,
			Name:     name,
		}),
		placeholders.Name:                rendering.EscapeHTML(name),
		placeholders.Title:               rendering.EscapeHTML(record.Title.String()),
		placeholders.Email:               rendering.EscapeHTML(fields.Email),
		placeholders.Phone:               rendering.EscapeHTML(fields.Phone),
		placeholders.PhoneE164:           fields.PhoneE164,
		placeholders.Location:            rendering.EscapeHTML(fields.Location),
		placeholders.Website:             rendering.SafeURL(fields.Website, ""),
		placeholders.LinkedIn:            rendering.SafeURL(fields.LinkedIn, contact.DefaultProfileLink),
		placeholders.GitHub:              rendering.SafeURL(fields.GitHub, contact.DefaultProfileLink),
		placeholders.References:          r.References(record.References),
		placeholders.Pitch:               pitch,
		placeholders.Experience:          r.Experience(record.Experience),
		placeholders.Education:           r.Education(record.Education),
		placeholders.Courses:             r.Courses(record.Courses),
		placeholders.Projects:            r.Projects(record.Projects),
		placeholders.TechnicalSkills:     r.TechnicalSkills(record.TechnicalSkills),
		placeholders.InterpersonalSkills: r.InterpersonalSkills(record.InterpersonalSkills),
		placeholders.LanguagesRight:      r.Languages(record.Languages),
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
