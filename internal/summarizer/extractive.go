// Package summarizer produces short extractive summaries of ranked
// sections: it selects the sentences most similar to the query and
// reassembles them in original reading order, never generating new text.
package summarizer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"docrank/internal/domain"
	"docrank/internal/scoring"
)

const defaultTopSentences = 3

// Extractive selects sentences by embedding similarity to the query.
type Extractive struct {
	embedder     domain.Embedder
	topSentences int
}

// NewExtractive creates a summarizer keeping at most topSentences sentences
// per section. Non-positive values fall back to the default of 3.
func NewExtractive(embedder domain.Embedder, topSentences int) *Extractive {
	if topSentences <= 0 {
		topSentences = defaultTopSentences
	}
	return &Extractive{embedder: embedder, topSentences: topSentences}
}

// Summarize returns the extractive summary of a section's text. Sentences
// are selected by similarity score but presented in original position
// order, so the excerpt reads coherently. A text with no sentences yields
// an empty string, which is not an error.
//
// Sentence splitting is a plain split on '.'; abbreviations and decimal
// numbers mis-split. That naivety is part of the output contract.
func (s *Extractive) Summarize(ctx context.Context, sectionText string, queryVec []float64) (string, error) {
	sentences := splitSentences(sectionText)
	if len(sentences) == 0 {
		return "", nil
	}

	vecs, err := s.embedder.EmbedBatch(ctx, sentences)
	if err != nil {
		return "", fmt.Errorf("embed sentences: %w", err)
	}
	sims := scoring.ScoreChunks(queryVec, vecs)

	type pair struct {
		idx   int
		score float64
	}
	pairs := make([]pair, len(sentences))
	for i := range sentences {
		pairs[i] = pair{i, sims[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })

	keep := s.topSentences
	if keep > len(pairs) {
		keep = len(pairs)
	}
	selected := make([]int, keep)
	for i := 0; i < keep; i++ {
		selected[i] = pairs[i].idx
	}
	// Back to reading order.
	sort.Ints(selected)

	out := make([]string, len(selected))
	for i, idx := range selected {
		out[i] = sentences[idx]
	}
	return strings.Join(out, " ") + ".", nil
}

func splitSentences(text string) []string {
	var sentences []string
	for _, piece := range strings.Split(text, ".") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			sentences = append(sentences, piece)
		}
	}
	return sentences
}
