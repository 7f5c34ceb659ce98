package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/extraction"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check a resume document with an LLM",
	Long:  "Validate sends the raw document text to Gemini, which judges whether it is a resume and returns a schema-conformant structured record.",
	RunE:  runValidate,
}

var (
	validateInputFile  string
	validateOutputFile string
	validateAPIKey     string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to resume document (required)")
	validateCmd.Flags().StringVarP(&validateOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	validateCmd.Flags().StringVar(&validateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	apiKey := resolveAPIKey(validateAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	text, err := extraction.ExtractFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", validateInputFile, err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := validation.NewValidator(client).Validate(ctx, text)
	if err != nil {
		if errors.Is(err, validation.ErrNotAResume) {
			return fmt.Errorf("%s does not look like a resume", validateInputFile)
		}
		return err
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if validateOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(validateOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Validated %s\n", validateInputFile)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateOutputFile)
	return nil
}
