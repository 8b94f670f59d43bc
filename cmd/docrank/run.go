package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docrank/internal/config"
	"docrank/internal/domain"
	"docrank/internal/embedding/openai"
	"docrank/internal/embedding/tfidf"
	"docrank/internal/logger"
	"docrank/internal/pipeline"
)

var (
	runDocsDir     string
	runPersonaFile string
	runJobFile     string
	runOutputFile  string
	runConfigPath  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one batch ranking request over a directory of documents",
	Long: `Reads every supported document in the directory, ranks its pages by
relevance to the persona's job-to-be-done and writes the result document
with the top sections and their extractive summaries.`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().StringVar(&runDocsDir, "docs-dir", "", "directory containing the documents")
	runCmd.Flags().StringVar(&runPersonaFile, "persona-file", "", "JSON file defining the persona")
	runCmd.Flags().StringVar(&runJobFile, "job-file", "", "text file describing the job-to-be-done")
	runCmd.Flags().StringVar(&runOutputFile, "output-file", "", "path for the output JSON result")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to a YAML config file (defaults apply when omitted)")

	for _, name := range []string{"docs-dir", "persona-file", "job-file", "output-file"} {
		cobra.CheckErr(runCmd.MarkFlagRequired(name))
	}

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(flagJSON, flagDebug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Validate every input before any processing starts.
	personaData, err := os.ReadFile(runPersonaFile)
	if err != nil {
		return fmt.Errorf("read persona file: %w", err)
	}
	persona, err := domain.ParsePersona(personaData)
	if err != nil {
		return fmt.Errorf("persona file %s: %w", runPersonaFile, err)
	}
	jobData, err := os.ReadFile(runJobFile)
	if err != nil {
		return fmt.Errorf("read job file: %w", err)
	}
	job := strings.TrimSpace(string(jobData))
	if _, err := os.ReadDir(runDocsDir); err != nil {
		return fmt.Errorf("read documents directory: %w", err)
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}

	log.Info("starting run",
		zap.String("docs_dir", runDocsDir),
		zap.String("embedder", embedder.Name()),
		zap.Int("chunk_size", cfg.Chunker.ChunkSize),
		zap.Int("top_sections", cfg.Ranking.TopSections),
		zap.Int("top_sentences", cfg.Summarizer.TopSentences),
	)

	p := pipeline.New(embedder, pipeline.Options{
		ChunkSize:    cfg.Chunker.ChunkSize,
		TopSections:  cfg.Ranking.TopSections,
		TopSentences: cfg.Summarizer.TopSentences,
	}, log)

	result, err := p.Run(context.Background(), runDocsDir, persona, job)
	if err != nil {
		// Terminal conditions write no output file at all.
		return err
	}

	if err := result.Write(runOutputFile); err != nil {
		return err
	}
	log.Info("analysis complete", zap.String("output", runOutputFile))
	return nil
}

func buildEmbedder(cfg *config.AppConfig) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "tfidf", "":
		return tfidf.NewEmbedder(), nil
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			return nil, fmt.Errorf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			Model:     cfg.Embedder.OpenAI.Model,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			BatchSize: cfg.Embedder.OpenAI.BatchSize,
		})
		if err != nil {
			return nil, fmt.Errorf("openai embedder init failed: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}
}
