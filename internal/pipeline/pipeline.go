// Package pipeline orchestrates one batch ranking run: extract pages,
// chunk, embed, score, aggregate, summarize, assemble the result. The run
// is strictly sequential; every stage owns its input and hands the next
// stage a fully built value.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"docrank/internal/chunker"
	"docrank/internal/domain"
	"docrank/internal/extract"
	"docrank/internal/query"
	"docrank/internal/ranking"
	"docrank/internal/report"
	"docrank/internal/scoring"
	"docrank/internal/summarizer"
)

// ErrNoText is returned when no document in the input directory yields any
// extractable text. The run aborts and no output file is written.
var ErrNoText = errors.New("no text could be extracted from the documents")

// Options carries the injected tuning knobs of a run.
type Options struct {
	ChunkSize    int
	TopSections  int
	TopSentences int
}

// Pipeline executes batch ranking runs with a fixed embedder and options.
type Pipeline struct {
	embedder domain.Embedder
	opts     Options
	log      *zap.Logger
	now      func() time.Time
}

// New creates a pipeline. A nil logger disables logging.
func New(embedder domain.Embedder, opts Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		embedder: embedder,
		opts:     opts,
		log:      log,
		now:      time.Now,
	}
}

// WithClock overrides the timestamp source, making runs reproducible in
// tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run executes one batch request and returns the assembled result. The
// caller decides where (and whether) to persist it.
func (p *Pipeline) Run(ctx context.Context, docsDir string, persona domain.Persona, job string) (*report.Result, error) {
	started := p.now()

	composed := query.Compose(persona, job)
	p.log.Debug("composed query", zap.String("query", composed))

	inputDocs, chunks, err := p.collectChunks(docsDir)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, ErrNoText
	}
	p.log.Info("chunked documents",
		zap.Int("documents", len(inputDocs)),
		zap.Int("chunks", len(chunks)),
		zap.String("embedder", p.embedder.Name()),
	)

	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}
	if prep, ok := p.embedder.(domain.Preparer); ok {
		if err := prep.Prepare(texts); err != nil {
			return nil, fmt.Errorf("prepare embedder: %w", err)
		}
	}

	queryVecs, err := p.embedder.EmbedBatch(ctx, []string{composed})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryVec := queryVecs[0]

	chunkVecs, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	scores := scoring.ScoreChunks(queryVec, chunkVecs)
	for i := range chunks {
		chunks[i].Score = scores[i]
	}

	ranked := ranking.NewAggregator(p.opts.TopSections).Aggregate(chunks)
	p.log.Info("ranked sections", zap.Int("sections", len(ranked)))

	summ := summarizer.NewExtractive(p.embedder, p.opts.TopSentences)
	result := &report.Result{
		Metadata: report.Metadata{
			InputDocuments:      inputDocs,
			Persona:             persona,
			JobToBeDone:         job,
			ProcessingTimestamp: started.Format(time.RFC3339),
		},
		Sections: make([]report.SectionEntry, 0, len(ranked)),
		Analyses: make([]report.AnalysisEntry, 0, len(ranked)),
	}
	for _, rs := range ranked {
		result.Sections = append(result.Sections, report.SectionEntry{
			Document:       rs.DocName,
			PageNumber:     rs.PageNum,
			SectionTitle:   fmt.Sprintf("Content from page %d", rs.PageNum),
			ImportanceRank: rs.ImportanceRank,
		})
		refined, err := summ.Summarize(ctx, rs.Text, queryVec)
		if err != nil {
			return nil, fmt.Errorf("summarize %s page %d: %w", rs.DocName, rs.PageNum, err)
		}
		result.Analyses = append(result.Analyses, report.AnalysisEntry{
			Document:    rs.DocName,
			PageNumber:  rs.PageNum,
			RefinedText: refined,
		})
	}

	p.log.Info("run complete", zap.Duration("elapsed", p.now().Sub(started)))
	return result, nil
}

// collectChunks walks the documents directory in lexical order, extracts
// pages from every supported file and chunks them. The returned filename
// list covers every file in the directory, processed or not, and feeds
// output metadata. Files the extraction collaborator cannot read are
// skipped.
func (p *Pipeline) collectChunks(docsDir string) ([]string, []domain.Chunk, error) {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("read documents directory: %w", err)
	}

	ch := chunker.NewPageChunker(p.opts.ChunkSize)
	inputDocs := make([]string, 0, len(entries))
	var chunks []domain.Chunk
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		inputDocs = append(inputDocs, entry.Name())
		ext, ok := extract.ForFile(entry.Name())
		if !ok {
			continue
		}
		pages, err := ext.ExtractPages(filepath.Join(docsDir, entry.Name()))
		if err != nil {
			p.log.Warn("skipping unreadable document",
				zap.String("document", entry.Name()),
				zap.Error(err),
			)
			continue
		}
		chunks = append(chunks, ch.Chunk(entry.Name(), pages)...)
	}
	return inputDocs, chunks, nil
}
