package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rmoreira/researchflow/internal/schemas"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write the library as a JSON snapshot file",
	Long:  "Write the article library to a JSON file and validate it against the research_library schema.",
	RunE:  runSnapshot,
}

var snapshotOutput string

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "out", "o", "research_library.json", "Path to the output JSON file")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(_ *cobra.Command, _ []string) error {
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

	articles := application.Articles()

	jsonBytes, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}
	if articles == nil {
		jsonBytes = []byte("[]")
	}

	if err := os.WriteFile(snapshotOutput, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath("schemas/research_library.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, snapshotOutput); err != nil {
			// Distinguish validation errors (data doesn't match schema) from schema load errors
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			switch {
			case errors.As(err, &validationErr):
				return fmt.Errorf("snapshot does not validate against schema: %w", err)
			case errors.As(err, &schemaLoadErr):
				fmt.Fprintf(os.Stderr, "Warning: could not validate snapshot (schema loading failed): %v\n", err)
			default:
				fmt.Fprintf(os.Stderr, "Warning: could not validate snapshot: %v\n", err)
			}
		}
	}

	fmt.Fprintf(os.Stdout, "Wrote %d article(s) to %s\n", len(articles), snapshotOutput)
	return nil
}
