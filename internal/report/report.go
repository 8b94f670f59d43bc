// Package report defines the result document produced by a run and its
// JSON serialization. Key names are part of the output contract and never
// change with refactors.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"docrank/internal/domain"
)

// Metadata describes the run itself: the inputs as given and when the
// run started (ISO-8601).
type Metadata struct {
	InputDocuments      []string       `json:"input_documents"`
	Persona             domain.Persona `json:"persona"`
	JobToBeDone         string         `json:"job_to_be_done"`
	ProcessingTimestamp string         `json:"processing_timestamp"`
}

// SectionEntry is one ranked section location.
type SectionEntry struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// AnalysisEntry carries the extractive summary for the section at the
// same index in the sections list.
type AnalysisEntry struct {
	Document    string `json:"document"`
	PageNumber  int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Result is the single structured output document. Sections and Analyses
// have the same length, are ordered by importance_rank ascending, and are
// index-aligned.
type Result struct {
	Metadata Metadata        `json:"Metadata"`
	Sections []SectionEntry  `json:"Extracted Section"`
	Analyses []AnalysisEntry `json:"Sub-section Analysis"`
}

// Write serializes the result to path, creating parent directories as
// needed.
func (r *Result) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// Read loads a previously written result document.
func Read(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &r, nil
}
