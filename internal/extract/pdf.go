package extract

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"

	"docrank/internal/domain"
)

// PDFExtractor reads PDF files, one extracted page per PDF page.
type PDFExtractor struct{}

func (e *PDFExtractor) ExtractPages(path string) ([]domain.Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []domain.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		pages = append(pages, domain.Page{Number: i, Text: text})
	}
	return pages, nil
}
