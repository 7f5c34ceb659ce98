package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/db"
	"github.com/jonathan/resume-extractor/internal/extraction"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/nlp"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/parser"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured record from a resume document",
	Long:  "Extract reads a resume document, runs the heuristic extraction pipeline, and writes the resulting record as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile   string
	extractOutputFile  string
	extractConfigFile  string
	extractAPIKey      string
	extractDatabaseURL string
	extractUseLLM      bool
	extractVerbose     bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume document (pdf, docx, doc, html, txt)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVarP(&extractConfigFile, "config", "c", "", "Path to JSON config file")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractDatabaseURL, "db-url", "", "PostgreSQL URL to store the record (overrides DATABASE_URL env var)")
	extractCmd.Flags().BoolVar(&extractUseLLM, "llm", false, "Use Gemini entity recognition to sharpen name and location extraction")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted record")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Input:       extractInputFile,
		Output:      extractOutputFile,
		APIKey:      extractAPIKey,
		DatabaseURL: extractDatabaseURL,
		UseLLM:      extractUseLLM,
		Verbose:     extractVerbose,
	}
	if extractConfigFile != "" {
		fileCfg, err := config.LoadConfig(extractConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --in or the config file)")
	}

	ctx := context.Background()

	text, err := extraction.ExtractFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", cfg.Input, err)
	}
	if cfg.Verbose {
		log.Printf("[VERBOSE] Extracted %d characters from %s", len(text), cfg.Input)
	}

	opts := []parser.Option{
		parser.WithSimilarityScorer(fuzzy.PartialRatio),
	}
	if len(cfg.SkillVocabulary) > 0 {
		opts = append(opts, parser.WithSkillVocabulary(cfg.SkillVocabulary))
	}
	if cfg.FuzzyThreshold > 0 {
		opts = append(opts, parser.WithFuzzyThreshold(cfg.FuzzyThreshold))
	}
	if cfg.SummaryMaxLines > 0 {
		opts = append(opts, parser.WithSummaryMaxLines(cfg.SummaryMaxLines))
	}

	if cfg.UseLLM {
		apiKey := resolveAPIKey(cfg.APIKey)
		if apiKey == "" {
			return fmt.Errorf("API key is required with --llm (set GEMINI_API_KEY or use --api-key)")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts = append(opts, parser.WithRecognizer(nlp.NewGeminiRecognizer(client)))
	}

	record := parser.New(opts...).Parse(ctx, text, cfg.Input)
	if err := record.Validate(); err != nil {
		return fmt.Errorf("extracted record failed validation: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRecord(record)
	}

	if dbURL := resolveDatabaseURL(cfg.DatabaseURL); dbURL != "" {
		store, err := db.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		if err := store.SaveExtraction(ctx, record); err != nil {
			return err
		}
		if cfg.Verbose {
			log.Printf("[VERBOSE] Stored extraction %s", record.ID)
		}
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if cfg.Output == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(cfg.Output, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Extracted %s\n", cfg.Input)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.Output)
	return nil
}

func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

func resolveDatabaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}
