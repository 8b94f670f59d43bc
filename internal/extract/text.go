package extract

import (
	"fmt"
	"os"

	"docrank/internal/domain"
)

// TextExtractor reads plain text files as a single page.
type TextExtractor struct{}

func (e *TextExtractor) ExtractPages(path string) ([]domain.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return []domain.Page{{Number: 1, Text: string(data)}}, nil
}
