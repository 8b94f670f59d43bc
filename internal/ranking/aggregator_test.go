package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docrank/internal/domain"
)

func TestAggregate_GroupingConcatAndMaxScore(t *testing.T) {
	chunks := []domain.Chunk{
		{Text: "first", DocName: "a.pdf", PageNum: 1, Score: 0.2},
		{Text: "second", DocName: "a.pdf", PageNum: 1, Score: 0.8},
		{Text: "third", DocName: "a.pdf", PageNum: 2, Score: 0.5},
	}
	ranked := NewAggregator(5).Aggregate(chunks)
	require.Len(t, ranked, 2)

	assert.Equal(t, "a.pdf", ranked[0].DocName)
	assert.Equal(t, 1, ranked[0].PageNum)
	assert.Equal(t, "first second ", ranked[0].Text)
	assert.InDelta(t, 0.8, ranked[0].MaxScore, 1e-12)
	assert.Equal(t, 1, ranked[0].ImportanceRank)

	assert.Equal(t, 2, ranked[1].PageNum)
	assert.Equal(t, "third ", ranked[1].Text)
	assert.Equal(t, 2, ranked[1].ImportanceRank)
}

func TestAggregate_TieBreakFirstAppearance(t *testing.T) {
	chunks := []domain.Chunk{
		{Text: "x", DocName: "b.pdf", PageNum: 3, Score: 0.5},
		{Text: "y", DocName: "a.pdf", PageNum: 1, Score: 0.5},
		{Text: "z", DocName: "c.pdf", PageNum: 2, Score: 0.5},
	}
	ranked := NewAggregator(5).Aggregate(chunks)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b.pdf", ranked[0].DocName)
	assert.Equal(t, "a.pdf", ranked[1].DocName)
	assert.Equal(t, "c.pdf", ranked[2].DocName)
}

func TestAggregate_RankMonotonicity(t *testing.T) {
	var chunks []domain.Chunk
	for i := 0; i < 12; i++ {
		chunks = append(chunks, domain.Chunk{
			Text:    "t",
			DocName: fmt.Sprintf("doc%02d.pdf", i),
			PageNum: 1,
			Score:   float64(i%7) / 10,
		})
	}
	ranked := NewAggregator(5).Aggregate(chunks)
	require.Len(t, ranked, 5)
	for i, rs := range ranked {
		assert.Equal(t, i+1, rs.ImportanceRank)
		if i > 0 {
			assert.LessOrEqual(t, rs.MaxScore, ranked[i-1].MaxScore)
		}
	}
}

func TestAggregate_NegativeScores(t *testing.T) {
	// MaxScore must be the real maximum, even when all scores are negative.
	chunks := []domain.Chunk{
		{Text: "a", DocName: "d.pdf", PageNum: 1, Score: -0.9},
		{Text: "b", DocName: "d.pdf", PageNum: 1, Score: -0.3},
	}
	ranked := NewAggregator(5).Aggregate(chunks)
	require.Len(t, ranked, 1)
	assert.InDelta(t, -0.3, ranked[0].MaxScore, 1e-12)
}

func TestAggregate_FewerSectionsThanLimit(t *testing.T) {
	chunks := []domain.Chunk{
		{Text: "a", DocName: "d.pdf", PageNum: 1, Score: 0.1},
	}
	ranked := NewAggregator(5).Aggregate(chunks)
	assert.Len(t, ranked, 1)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, NewAggregator(5).Aggregate(nil))
}
