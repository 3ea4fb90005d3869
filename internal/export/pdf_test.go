package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<!DOCTYPE html><html><head><style>body{background:#eef;}</style></head>` +
	`<body><h1>Sami Kazemi</h1><p>Data Engineer</p></body></html>`

func requireChrome(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}
	if FindChrome() == "" {
		t.Skip("Skipping browser test: no Chrome/Chromium found")
	}
}

func TestPDFError(t *testing.T) {
	cause := errors.New("boom")
	err := &PDFError{Message: "browser printing failed", Cause: cause}

	assert.Equal(t, "pdf error: browser printing failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "pdf error: output path is empty", (&PDFError{Message: "output path is empty"}).Error())
}

func TestWritePDF_EmptyPath(t *testing.T) {
	err := WritePDF(context.Background(), sampleDocument, "", PDFOptions{})
	require.Error(t, err)

	var pdfErr *PDFError
	require.True(t, errors.As(err, &pdfErr))
	assert.Contains(t, err.Error(), "output path is empty")
}

func TestRenderPDF(t *testing.T) {
	requireChrome(t)

	pdf, err := RenderPDF(context.Background(), sampleDocument, PDFOptions{Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestWritePDF(t *testing.T) {
	requireChrome(t)

	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, WritePDF(context.Background(), sampleDocument, path, PDFOptions{Timeout: 30 * time.Second}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderPDF_CanceledContext(t *testing.T) {
	requireChrome(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderPDF(ctx, sampleDocument, PDFOptions{})
	require.Error(t, err)

	var pdfErr *PDFError
	assert.True(t, errors.As(err, &pdfErr))
}
