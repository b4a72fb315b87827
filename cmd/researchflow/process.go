package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rmoreira/researchflow/internal/fetch"
	"github.com/rmoreira/researchflow/internal/observability"
	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Analyze one article against the research goal",
	Long:  "Analyze article content against the current research goal, producing a title, a relevance score with reasoning, and section summaries. Content comes from --in, --url, or stdin.",
	RunE:  runProcess,
}

var (
	processInputFile string
	processURL       string
	processBrowser   bool
)

func init() {
	processCmd.Flags().StringVarP(&processInputFile, "in", "i", "", "Path to a text file with the article content")
	processCmd.Flags().StringVarP(&processURL, "url", "u", "", "URL to fetch the article from")
	processCmd.Flags().BoolVar(&processBrowser, "browser", false, "Render the URL in a headless browser when the static page looks empty")

	rootCmd.AddCommand(processCmd)
}

func runProcess(_ *cobra.Command, _ []string) error {
	if processInputFile != "" && processURL != "" {
		return fmt.Errorf("--in and --url are mutually exclusive")
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

	if !requireTopic(application.Goal()) {
		return nil
	}

	content, err := readContent(ctx, cfg.UseBrowser || processBrowser)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Fprintln(os.Stderr, "Nothing to process: no article content provided.")
		return nil
	}

	article, err := application.SubmitManual(ctx, content)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}
	if article == nil {
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintArticle(article)
	return nil
}

func readContent(ctx context.Context, allowBrowser bool) (string, error) {
	switch {
	case processURL != "":
		text, err := fetch.ArticleText(ctx, processURL, allowBrowser)
		if err != nil {
			return "", fmt.Errorf("failed to fetch article: %w", err)
		}
		return text, nil
	case processInputFile != "":
		data, err := os.ReadFile(processInputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}
