package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name      string
		supported bool
	}{
		{"report.pdf", true},
		{"Report.PDF", true},
		{"notes.txt", true},
		{"readme.md", true},
		{"readme.markdown", true},
		{"letter.docx", true},
		{"image.png", false},
		{"archive.zip", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ForFile(tt.name)
			assert.Equal(t, tt.supported, ok)
		})
	}
}

func TestTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nsecond line"), 0o644))

	pages, err := (&TextExtractor{}).ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "hello world\nsecond line", pages[0].Text)
}

func TestTextExtractor_MissingFile(t *testing.T) {
	_, err := (&TextExtractor{}).ExtractPages(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestMarkdownExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	src := "# Title\n\nFirst paragraph with *emphasis*.\n\n## Sub\n\nSecond paragraph.\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	pages, err := (&MarkdownExtractor{}).ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0].Text, "Title")
	assert.Contains(t, pages[0].Text, "First paragraph with *emphasis*.")
	assert.Contains(t, pages[0].Text, "Second paragraph.")
	assert.NotContains(t, pages[0].Text, "#")
}

func TestPDFExtractor_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := (&PDFExtractor{}).ExtractPages(path)
	assert.Error(t, err)
}
