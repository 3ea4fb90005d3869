package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/export"
	"github.com/jonathan/resume-site/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the résumé record into a self-contained HTML page",
	Long: `Loads the résumé record, renders every section, embeds the assets as data URIs and fills the HTML template.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values,
which override RESUME_* environment variables.`,
	RunE: runRender,
}

var (
	renderConfigPath    string
	renderData          string
	renderTemplate      string
	renderStylesheet    string
	renderAssets        string
	renderOutput        string
	renderPDF           string
	renderVideo         bool
	renderMarkdownPitch bool
	renderStrict        bool
	renderVerbose       bool
)

func init() {
	// Config file flag (processed first)
	renderCmd.Flags().StringVarP(&renderConfigPath, "config", "c", "", "Path to config.json file (values can be overridden by other flags)")

	renderCmd.Flags().StringVarP(&renderData, "data", "d", "", "Path to résumé record, JSON or YAML (default data/resume.json)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Path to HTML template (default: built-in)")
	renderCmd.Flags().StringVarP(&renderStylesheet, "stylesheet", "s", "", "Path to stylesheet (default: built-in)")
	renderCmd.Flags().StringVarP(&renderAssets, "assets", "a", "", "Directory holding images and video (default img)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output HTML path, - for stdout (default resume.html)")
	renderCmd.Flags().StringVar(&renderPDF, "pdf", "", "Also print the page to this PDF path (requires Chrome)")
	renderCmd.Flags().BoolVar(&renderVideo, "video", false, "Use the avatar video instead of the image when present")
	renderCmd.Flags().BoolVar(&renderMarkdownPitch, "markdown-pitch", false, "Render the pitch as Markdown")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Fail when the template has placeholders without values")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file and environment
	cfg, err := config.Resolve(renderConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	applyRenderFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Status lines must not mix with the document on stdout
	status := cmd.OutOrStdout()
	if cfg.Output == "-" {
		status = cmd.ErrOrStderr()
	}
	if cfg.Verbose && renderConfigPath != "" {
		_, _ = fmt.Fprintf(status, "Loaded config from: %s\n", renderConfigPath)
	}

	badge := cfg.CourseBadge
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		DataPath:       cfg.Data,
		TemplatePath:   cfg.Template,
		StylesheetPath: cfg.Stylesheet,
		AssetDir:       cfg.AssetDir,
		AvatarImage:    cfg.AvatarImage,
		AvatarVideo:    cfg.AvatarVideo,
		UseVideo:       cfg.UseVideo,
		CourseBadge:    &badge,
		MarkdownPitch:  cfg.MarkdownPitch,
		Strict:         cfg.Strict,
		Verbose:        cfg.Verbose,
		Status:         status,
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := writeOutput(cmd.OutOrStdout(), cfg.Output, result.HTML); err != nil {
		return err
	}
	if cfg.Output != "-" {
		_, _ = fmt.Fprintf(status, "Wrote %s (%d bytes)\n", cfg.Output, len(result.HTML))
	}

	if cfg.PDF != "" {
		_, _ = fmt.Fprintf(status, "Printing PDF to %s...\n", cfg.PDF)
		if err := ensureParentDir(cfg.PDF); err != nil {
			return err
		}
		err := export.WritePDF(ctx, result.HTML, cfg.PDF, export.PDFOptions{
			Timeout: time.Duration(cfg.PDFTimeoutSeconds) * time.Second,
			Verbose: cfg.Verbose,
		})
		if err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
	}

	_, _ = fmt.Fprintf(status, "Done!\n")
	return nil
}

func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = renderData
	}
	if flags.Changed("template") {
		cfg.Template = renderTemplate
	}
	if flags.Changed("stylesheet") {
		cfg.Stylesheet = renderStylesheet
	}
	if flags.Changed("assets") {
		cfg.AssetDir = renderAssets
	}
	if flags.Changed("out") {
		cfg.Output = renderOutput
	}
	if flags.Changed("pdf") {
		cfg.PDF = renderPDF
	}
	if flags.Changed("video") {
		cfg.UseVideo = renderVideo
	}
	if flags.Changed("markdown-pitch") {
		cfg.MarkdownPitch = renderMarkdownPitch
	}
	if flags.Changed("strict") {
		cfg.Strict = renderStrict
	}
	if flags.Changed("verbose") {
		cfg.Verbose = renderVerbose
	}
}

// writeOutput writes the document to path, or to stdout for "-"
func writeOutput(stdout io.Writer, path, html string) error {
	if path == "-" {
		if _, err := io.WriteString(stdout, html); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		return nil
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
