// Package main provides the entry point for the resume extraction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_extract",
	Short: "Heuristic resume field extraction",
	Long:  "resume_extract pulls structured candidate records out of resume documents (PDF, DOCX, DOC, HTML, plain text) using layered heuristics, with optional LLM-backed entity recognition and validation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
