package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docrank/internal/domain"
)

func TestChunk_SizeBoundAndReassembly(t *testing.T) {
	text := strings.Repeat("abcdefghij", 123) // 1230 chars
	c := NewPageChunker(500)

	chunks := c.Chunk("doc.pdf", []domain.Page{{Number: 1, Text: text}})
	require.Len(t, chunks, 3)

	var rebuilt strings.Builder
	for _, ch := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(ch.Text), 500)
		assert.Equal(t, "doc.pdf", ch.DocName)
		assert.Equal(t, 1, ch.PageNum)
		rebuilt.WriteString(ch.Text)
	}
	assert.Equal(t, text, rebuilt.String())
	assert.Equal(t, 230, utf8.RuneCountInString(chunks[2].Text))
}

func TestChunk_MidWordSplit(t *testing.T) {
	// Boundaries are positional, not word-aware.
	c := NewPageChunker(4)
	chunks := c.Chunk("d", []domain.Page{{Number: 1, Text: "wordword"}})
	require.Len(t, chunks, 2)
	assert.Equal(t, "word", chunks[0].Text)
	assert.Equal(t, "word", chunks[1].Text)
}

func TestChunk_EmptyPagesSkipped(t *testing.T) {
	c := NewPageChunker(10)
	pages := []domain.Page{
		{Number: 1, Text: "  \n\t "},
		{Number: 2, Text: "content"},
		{Number: 3, Text: ""},
	}
	chunks := c.Chunk("d", pages)
	require.Len(t, chunks, 1)
	assert.Equal(t, 2, chunks[0].PageNum)
}

func TestChunk_Ordering(t *testing.T) {
	c := NewPageChunker(3)
	pages := []domain.Page{
		{Number: 1, Text: "aaabbb"},
		{Number: 2, Text: "ccc"},
	}
	chunks := c.Chunk("d", pages)
	require.Len(t, chunks, 3)
	assert.Equal(t, []domain.Chunk{
		{Text: "aaa", DocName: "d", PageNum: 1},
		{Text: "bbb", DocName: "d", PageNum: 1},
		{Text: "ccc", DocName: "d", PageNum: 2},
	}, chunks)
}

func TestChunk_MultibyteText(t *testing.T) {
	// Size is measured in runes so multibyte text never splits mid-rune.
	c := NewPageChunker(2)
	chunks := c.Chunk("d", []domain.Page{{Number: 1, Text: "日本語で"}})
	require.Len(t, chunks, 2)
	assert.Equal(t, "日本", chunks[0].Text)
	assert.Equal(t, "語で", chunks[1].Text)
}

func TestNewPageChunker_DefaultSize(t *testing.T) {
	assert.Equal(t, 500, NewPageChunker(0).Size())
	assert.Equal(t, 500, NewPageChunker(-3).Size())
	assert.Equal(t, 42, NewPageChunker(42).Size())
}
