package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmoreira/researchflow/internal/observability"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web and synthesize the most relevant articles",
	Long:  "Run an agent web search for the query, select the most relevant articles for the research goal, and generate a full structured breakdown for each.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var searchResults int

func init() {
	searchCmd.Flags().IntVarP(&searchResults, "results", "n", 0, "How many results to request (default from config)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}
	if searchResults > 0 {
		cfg.SearchResults = searchResults
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	application, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if !requireTopic(application.Goal()) {
		return nil
	}

	results, err := application.SubmitBatch(ctx, args[0])
	if err != nil {
		return fmt.Errorf("batch search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "Search returned no results.")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for i := range results {
		printer.PrintArticle(&results[i])
	}
	fmt.Fprintf(os.Stdout, "Added %d article(s) to the library.\n", len(results))
	return nil
}
