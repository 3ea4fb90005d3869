package rendering

import "bytes"

// Pitch renders the free-text pitch. Inline HTML is sanitized; with
// Markdown enabled the text is converted first.
func (r *Renderer) Pitch(text string) (string, error) {
	if !r.markdownPitch {
		return SanitizeRich(text), nil
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(text), &buf); err != nil {
		return "", &RenderError{
			Section: "pitch",
			Message: "failed to convert markdown",
			Cause:   err,
		}
	}
	return SanitizeRich(buf.String()), nil
}
