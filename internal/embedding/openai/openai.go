// Package openai embeds texts through the OpenAI embeddings API. Requests
// are batched: one API call covers a whole batch of texts, which is the
// pipeline's main performance lever when thousands of chunks are embedded.
package openai

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel     = "text-embedding-3-small"
	defaultAPIKeyEnv = "OPENAI_API_KEY"
	defaultBatchSize = 32
)

// Client is a batching embeddings client backed by the OpenAI API.
type Client struct {
	api       *openai.Client
	model     string
	batchSize int
}

// Config configures the OpenAI embeddings client.
type Config struct {
	Model     string
	APIKeyEnv string
	BatchSize int
}

// NewClient creates an embeddings client. The API key is read from the
// configured environment variable; a missing key is an immediate error
// since every downstream score depends on successful embedding.
func NewClient(cfg Config) (*Client, error) {
	env := cfg.APIKeyEnv
	if env == "" {
		env = defaultAPIKeyEnv
	}
	key := os.Getenv(env)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", env)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	return &Client{
		api:       openai.NewClient(key),
		model:     model,
		batchSize: batch,
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (c *Client) Name() string { return "openai" }

// EmbedBatch returns one vector per input text, in input order, issuing
// one API call per batch of at most the configured batch size.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(c.model),
			Input: texts[start:end],
		})
		if err != nil {
			return nil, fmt.Errorf("create embeddings: %w", err)
		}
		if len(resp.Data) != end-start {
			return nil, fmt.Errorf("embeddings response size mismatch: want %d, got %d", end-start, len(resp.Data))
		}
		for _, item := range resp.Data {
			vec := make([]float64, len(item.Embedding))
			for i, v := range item.Embedding {
				vec[i] = float64(v)
			}
			out = append(out, vec)
		}
	}
	return out, nil
}
