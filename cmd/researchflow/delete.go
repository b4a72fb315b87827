package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmoreira/researchflow/internal/types"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one article from the library by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every article from the library",
	RunE:  runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation check")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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

	id := args[0]
	if types.Find(application.Articles(), id) == nil {
		fmt.Fprintf(os.Stderr, "No article with id %s\n", id)
		return nil
	}

	application.Delete(ctx, id)
	fmt.Fprintf(os.Stdout, "Deleted %s (%d article(s) remain)\n", id, len(application.Articles()))
	return nil
}

func runClear(_ *cobra.Command, _ []string) error {
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

	count := len(application.Articles())
	if count == 0 {
		fmt.Fprintln(os.Stdout, "Library is already empty.")
		return nil
	}
	if !clearYes {
		return fmt.Errorf("refusing to clear %d article(s) without --yes", count)
	}

	application.Clear(ctx)
	fmt.Fprintf(os.Stdout, "Cleared %d article(s).\n", count)
	return nil
}
