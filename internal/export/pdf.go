// Package export prints a rendered résumé document to PDF with a headless browser.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single PDF export
const DefaultTimeout = 60 * time.Second

// chromeCandidates are the executable names searched by FindChrome
var chromeCandidates = []string{
	"headless-shell",
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
}

// PDFOptions configures a PDF export
type PDFOptions struct {
	Timeout   time.Duration // 0 uses DefaultTimeout
	Landscape bool
	Verbose   bool
}

// PDFError represents a failure to print a document to PDF
type PDFError struct {
	Message string
	Cause   error
}

func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf error: %s", e.Message)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}

// FindChrome returns the path of an installed Chrome/Chromium, or "" if none is found
func FindChrome() string {
	for _, name := range chromeCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// RenderPDF loads html into a headless browser and prints it with
// backgrounds. The intro animation is suppressed by emulating a
// reduced-motion print medium. Requires Chrome/Chromium to be installed on the system.
func RenderPDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if opts.Verbose {
		log.Printf("[PDF] Starting headless browser for %d byte document", len(html))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	// Set timeout
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		emulation.SetEmulatedMedia().
			WithMedia("print").
			WithFeatures([]*emulation.MediaFeature{{Name: "prefers-reduced-motion", Value: "reduce"}}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &PDFError{Message: "browser printing failed", Cause: err}
	}

	if opts.Verbose {
		log.Printf("[PDF] Printed PDF: %d bytes", len(pdf))
	}

	return pdf, nil
}

// WritePDF renders html to PDF and writes it to path
func WritePDF(ctx context.Context, html, path string, opts PDFOptions) error {
	if path == "" {
		return &PDFError{Message: "output path is empty"}
	}

	pdf, err := RenderPDF(ctx, html, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return &PDFError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}
