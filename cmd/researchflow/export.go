package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmoreira/researchflow/internal/report"
	"github.com/rmoreira/researchflow/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export an article as a paginated PDF report",
	Long:  "Export one article (by id) or the whole library (--all) as paginated PDF summary reports.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var (
	exportAll     bool
	exportOutput  string
	exportOutDir  string
	exportWorkers int
)

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every article in the library")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file path (single export only; defaults to a name derived from the title)")
	exportCmd.Flags().StringVar(&exportOutDir, "out-dir", ".", "Output directory for --all")
	exportCmd.Flags().IntVar(&exportWorkers, "workers", 4, "Concurrent renders for --all")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	if exportAll == (len(args) == 1) {
		return fmt.Errorf("provide either an article id or --all")
	}

	ctx := context.Background()

	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	application, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if exportAll {
		return exportLibrary(application.Articles())
	}
	return exportOne(application.Articles(), args[0])
}

func exportOne(articles []types.ProcessedArticle, id string) error {
	article := types.Find(articles, id)
	// Exporting a missing article is a no-op, not an error.
	if article == nil {
		fmt.Fprintf(os.Stderr, "No article with id %s; nothing exported\n", id)
		return nil
	}

	path := exportOutput
	if path == "" {
		path = report.Filename(article.Title)
	}
	if err := writeReport(article, path); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported %s\n", path)
	return nil
}

func exportLibrary(articles []types.ProcessedArticle) error {
	if len(articles) == 0 {
		fmt.Fprintln(os.Stdout, "Library is empty; nothing to export.")
		return nil
	}

	g := new(errgroup.Group)
	g.SetLimit(exportWorkers)

	for i := range articles {
		article := articles[i]
		g.Go(func() error {
			path := filepath.Join(exportOutDir, report.Filename(article.Title))
			return writeReport(&article, path)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported %d report(s) to %s\n", len(articles), exportOutDir)
	return nil
}

func writeReport(article *types.ProcessedArticle, path string) error {
	data, err := report.Generate(article)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if data == nil {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
