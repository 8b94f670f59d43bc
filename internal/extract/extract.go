// Package extract converts source documents into per-page plain text.
// It is the document-extraction collaborator of the ranking pipeline: the
// pipeline only depends on the ordered (page number, text) sequence.
package extract

import (
	"path/filepath"
	"strings"

	"docrank/internal/domain"
)

// Extractor produces the ordered pages of one document.
type Extractor interface {
	ExtractPages(path string) ([]domain.Page, error)
}

// ForFile returns the extractor for a filename, or false when the file's
// extension is not supported. Unsupported files are skipped by callers,
// never treated as errors.
func ForFile(name string) (Extractor, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return &PDFExtractor{}, true
	case ".docx":
		return &DOCXExtractor{}, true
	case ".md", ".markdown":
		return &MarkdownExtractor{}, true
	case ".txt":
		return &TextExtractor{}, true
	default:
		return nil, false
	}
}
