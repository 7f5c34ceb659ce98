package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/rendering"
	"github.com/jonathan/resume-extractor/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an extracted record as Markdown",
	Long:  "Render reads an extraction result JSON file and writes a human-readable Markdown document.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to extraction result JSON (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output Markdown file (default: stdout)")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse record JSON: %w", err)
	}

	markdown, err := rendering.RenderMarkdown(&record)
	if err != nil {
		return err
	}

	if renderOutputFile == "" {
		_, _ = fmt.Fprint(os.Stdout, markdown)
		return nil
	}
	if err := os.WriteFile(renderOutputFile, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
