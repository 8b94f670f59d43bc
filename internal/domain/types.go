package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// Page is one page of plain text extracted from a source document.
// Page numbers are 1-based.
type Page struct {
	Number int
	Text   string
}

// Chunk is a fixed-size slice of a single page's text, the atomic unit
// of relevance scoring. Score is the cosine similarity against the query
// embedding and stays zero until the scorer runs.
type Chunk struct {
	Text    string
	DocName string
	PageNum int
	Score   float64
}

// Section groups every chunk sharing a (document, page) key. Text is the
// concatenation of the chunk texts in chunk order, each followed by a
// single space; MaxScore is the highest chunk score in the group.
type Section struct {
	DocName  string
	PageNum  int
	Text     string
	MaxScore float64
}

// RankedSection is a Section with its 1-based rank after sorting all
// sections by MaxScore descending.
type RankedSection struct {
	Section
	ImportanceRank int
}

// Embedder converts a batch of texts into fixed-dimension numeric vectors,
// one vector per input text, in input order.
type Embedder interface {
	Name() string
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Preparer is implemented by embedders that must be fitted on the chunk
// corpus before they can embed anything.
type Preparer interface {
	Prepare(corpus []string) error
}

// Persona describes who is asking. Role and Expertise feed the query
// template; every field of the original JSON object, known or not, is
// carried through into output metadata unchanged.
type Persona struct {
	fields map[string]any
}

// ParsePersona decodes a persona from its JSON representation. The input
// must be a JSON object; anything else is a malformed persona.
func ParsePersona(data []byte) (Persona, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return Persona{}, fmt.Errorf("decode persona: %w", err)
	}
	return Persona{fields: fields}, nil
}

// NewPersona builds a persona from explicit fields.
func NewPersona(fields map[string]any) Persona {
	return Persona{fields: fields}
}

// Role returns the persona's role, or "" when absent.
func (p Persona) Role() string { return p.stringField("role") }

// Expertise returns the persona's expertise, or "" when absent.
func (p Persona) Expertise() string { return p.stringField("expertise") }

func (p Persona) stringField(key string) string {
	if v, ok := p.fields[key].(string); ok {
		return v
	}
	return ""
}

// MarshalJSON round-trips the persona object as given.
func (p Persona) MarshalJSON() ([]byte, error) {
	if p.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.fields)
}

// UnmarshalJSON restores a persona from a stored result document.
func (p *Persona) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.fields)
}
