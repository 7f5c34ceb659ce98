package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/db"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored extractions",
	Long:  "List queries the database for stored extraction records, optionally filtered by candidate email or name.",
	RunE:  runList,
}

var (
	listDatabaseURL string
	listEmail       string
	listName        string
	listLimit       int
)

func init() {
	listCmd.Flags().StringVar(&listDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	listCmd.Flags().StringVar(&listEmail, "email", "", "Filter by exact candidate email")
	listCmd.Flags().StringVar(&listName, "name", "", "Filter by candidate name substring")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum number of records to show")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	dbURL := resolveDatabaseURL(listDatabaseURL)
	if dbURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	summaries, err := store.ListExtractions(ctx, db.ExtractionFilters{
		Email: listEmail,
		Name:  listName,
		Limit: listLimit,
	})
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No extractions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSOURCE\tEXTRACTED")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Email, s.SourcePath, s.ExtractedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
