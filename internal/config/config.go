// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by FromEnv
const (
	EnvData       = "RESUME_DATA"
	EnvTemplate   = "RESUME_TEMPLATE"
	EnvStylesheet = "RESUME_STYLESHEET"
	EnvAssetDir   = "RESUME_ASSET_DIR"
	EnvOutput     = "RESUME_OUTPUT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Data       string `json:"data,omitempty"`       // Path to the résumé record (JSON or YAML)
	Template   string `json:"template,omitempty"`   // Path to the HTML template; empty uses the built-in one
	Stylesheet string `json:"stylesheet,omitempty"` // Path to the stylesheet; empty uses the built-in one
	AssetDir   string `json:"asset_dir,omitempty"`  // Directory holding images and video
	Output     string `json:"output,omitempty"`     // Output HTML path, "-" for stdout
	PDF        string `json:"pdf,omitempty" validate:"omitempty,endswith=.pdf"`

	// Assets
	AvatarImage string `json:"avatar_image,omitempty"` // Profile image, relative to AssetDir
	AvatarVideo string `json:"avatar_video,omitempty"` // Profile video, relative to AssetDir
	CourseBadge string `json:"course_badge,omitempty"` // Course badge background, relative to AssetDir

	// Behavior
	UseVideo          bool `json:"use_video,omitempty"`           // Prefer the avatar video over the image
	MarkdownPitch     bool `json:"markdown_pitch,omitempty"`      // Render the pitch as Markdown
	Strict            bool `json:"strict,omitempty"`              // Fail on placeholders without values
	Verbose           bool `json:"verbose,omitempty"`             // Print detailed debug information
	PDFTimeoutSeconds int  `json:"pdf_timeout_seconds,omitempty" validate:"gte=0,lte=600"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Data:              "data/resume.json",
		AssetDir:          "img",
		Output:            "resume.html",
		AvatarImage:       "pic1.jpg",
		AvatarVideo:       "video.mp4",
		CourseBadge:       "badge.png",
		PDFTimeoutSeconds: 60,
	}
}

// FromEnv returns the path settings given through environment variables
func FromEnv() Config {
	return Config{
		Data:       strings.TrimSpace(os.Getenv(EnvData)),
		Template:   strings.TrimSpace(os.Getenv(EnvTemplate)),
		Stylesheet: strings.TrimSpace(os.Getenv(EnvStylesheet)),
		AssetDir:   strings.TrimSpace(os.Getenv(EnvAssetDir)),
		Output:     strings.TrimSpace(os.Getenv(EnvOutput)),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check that the data file exists; a missing record is
// reported by the loader when rendering starts.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Output == "-" && c.PDF != "" {
		return fmt.Errorf("config error: 'pdf' cannot be combined with output to stdout")
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	if c.Stylesheet != "" {
		if _, err := os.Stat(c.Stylesheet); os.IsNotExist(err) {
			return fmt.Errorf("config error: stylesheet file not found: %s", c.Stylesheet)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file, environment and built-in values under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Data == "" {
		result.Data = defaults.Data
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Stylesheet == "" {
		result.Stylesheet = defaults.Stylesheet
	}
	if result.AssetDir == "" {
		result.AssetDir = defaults.AssetDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.PDF == "" {
		result.PDF = defaults.PDF
	}
	if result.AvatarImage == "" {
		result.AvatarImage = defaults.AvatarImage
	}
	if result.AvatarVideo == "" {
		result.AvatarVideo = defaults.AvatarVideo
	}
	if result.CourseBadge == "" {
		result.CourseBadge = defaults.CourseBadge
	}

	// Int fields: use default if zero
	if result.PDFTimeoutSeconds == 0 {
		result.PDFTimeoutSeconds = defaults.PDFTimeoutSeconds
	}

	// Bool fields: a true default wins, since unset and false look the same
	result.UseVideo = result.UseVideo || defaults.UseVideo
	result.MarkdownPitch = result.MarkdownPitch || defaults.MarkdownPitch
	result.Strict = result.Strict || defaults.Strict
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Resolve layers a config file (optional), the environment and the built-in
// defaults, in that order of precedence.
func Resolve(path string) (Config, error) {
	var cfg Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = *loaded
	}

	env := FromEnv()
	cfg = cfg.MergeWithDefaults(env)
	return cfg.MergeWithDefaults(Defaults()), nil
}
