// Package ranking groups scored chunks into per-page sections and orders
// them by relevance.
package ranking

import (
	"sort"

	"docrank/internal/domain"
)

const defaultTopSections = 5

// Aggregator groups chunks by (document, page) and ranks the resulting
// sections by their best chunk score.
type Aggregator struct {
	topSections int
}

// NewAggregator creates an aggregator returning at most topSections ranked
// sections. Non-positive values fall back to the default of 5.
func NewAggregator(topSections int) *Aggregator {
	if topSections <= 0 {
		topSections = defaultTopSections
	}
	return &Aggregator{topSections: topSections}
}

type sectionKey struct {
	doc  string
	page int
}

// Aggregate builds sections from scored chunks and returns the top ones
// with 1-based importance ranks. Grouping keeps chunk order within a
// section; the sort is stable with first-appearance order breaking
// MaxScore ties, so results are reproducible across runs. Fewer sections
// than the configured limit is not an error.
func (a *Aggregator) Aggregate(chunks []domain.Chunk) []domain.RankedSection {
	index := make(map[sectionKey]int)
	var sections []domain.Section

	for _, ch := range chunks {
		key := sectionKey{doc: ch.DocName, page: ch.PageNum}
		i, seen := index[key]
		if !seen {
			i = len(sections)
			index[key] = i
			sections = append(sections, domain.Section{
				DocName:  ch.DocName,
				PageNum:  ch.PageNum,
				MaxScore: ch.Score,
			})
		} else if ch.Score > sections[i].MaxScore {
			sections[i].MaxScore = ch.Score
		}
		sections[i].Text += ch.Text + " "
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].MaxScore > sections[j].MaxScore
	})

	limit := a.topSections
	if limit > len(sections) {
		limit = len(sections)
	}
	ranked := make([]domain.RankedSection, 0, limit)
	for i := 0; i < limit; i++ {
		ranked = append(ranked, domain.RankedSection{
			Section:        sections[i],
			ImportanceRank: i + 1,
		})
	}
	return ranked
}
