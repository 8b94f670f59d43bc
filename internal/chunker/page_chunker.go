// Package chunker splits extracted page text into fixed-size chunks.
package chunker

import (
	"strings"

	"docrank/internal/domain"
)

const defaultChunkSize = 500

// PageChunker cuts each page's text into consecutive, non-overlapping
// slices of a fixed number of characters, the last slice possibly shorter.
// Boundaries are purely positional; splitting mid-word is expected.
type PageChunker struct {
	size int
}

// NewPageChunker creates a chunker with the given chunk size in characters
// (runes). Non-positive sizes fall back to the default of 500.
func NewPageChunker(size int) *PageChunker {
	if size <= 0 {
		size = defaultChunkSize
	}
	return &PageChunker{size: size}
}

// Size returns the configured chunk size.
func (c *PageChunker) Size() int { return c.size }

// Chunk produces the chunks for one document. Pages whose trimmed text is
// empty are skipped. Output order is pages as given, then ascending start
// offset, so concatenating a page's chunks reproduces the page text exactly.
func (c *PageChunker) Chunk(docName string, pages []domain.Page) []domain.Chunk {
	var chunks []domain.Chunk
	for _, page := range pages {
		if strings.TrimSpace(page.Text) == "" {
			continue
		}
		runes := []rune(page.Text)
		for start := 0; start < len(runes); start += c.size {
			end := start + c.size
			if end > len(runes) {
				end = len(runes)
			}
			chunks = append(chunks, domain.Chunk{
				Text:    string(runes[start:end]),
				DocName: docName,
				PageNum: page.Number,
			})
		}
	}
	return chunks
}
