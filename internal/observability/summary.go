package observability

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-site/internal/placeholders"
)

// RenderSummary counts what a rendered document contains
type RenderSummary struct {
	Bytes               int
	EmbeddedAssets      int
	Experience          int
	Education           int
	Tiles               int
	TechnicalSkills     int
	InterpersonalSkills int
	Languages           int
	References          int
	EmptySections       []string
	Unresolved          []string
}

// Summarize parses a rendered document and counts its cards, items and
// embedded assets. Placeholder tokens still present in the markup are
// reported in Unresolved.
func Summarize(html string) (*RenderSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered document: %w", err)
	}

	summary := &RenderSummary{
		Bytes:               len(html),
		Experience:          doc.Find(".exp-entry").Length(),
		Education:           doc.Find(".edu-entry").Length(),
		Tiles:               doc.Find(".course-item").Length(),
		TechnicalSkills:     doc.Find(".skill-item").Length(),
		InterpersonalSkills: doc.Find(".skill-circle-item").Length(),
		Languages:           doc.Find(".language-box").Length(),
		References:          doc.Find(".reference-link").Length(),
		Unresolved:          placeholders.Tokens(html),
	}

	doc.Find("img[src], video source[src]").Each(func(_ int, s *goquery.Selection) {
		if src, _ := s.Attr("src"); strings.HasPrefix(src, "data:") {
			summary.EmbeddedAssets++
		}
	})
	doc.Find("[style*='data:']").Each(func(_ int, s *goquery.Selection) {
		summary.EmbeddedAssets++
	})

	doc.Find(".section-none").Each(func(_ int, s *goquery.Selection) {
		summary.EmptySections = append(summary.EmptySections, strings.TrimSpace(s.Text()))
	})

	return summary, nil
}
