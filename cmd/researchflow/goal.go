package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmoreira/researchflow/internal/observability"
	"github.com/rmoreira/researchflow/internal/types"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or edit the research goal",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current research goal",
	RunE:  runGoalShow,
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the research goal topic and description",
	RunE:  runGoalSet,
}

var (
	goalTopic       string
	goalDescription string
)

func init() {
	goalSetCmd.Flags().StringVarP(&goalTopic, "topic", "t", "", "Primary research topic (required before processing)")
	goalSetCmd.Flags().StringVarP(&goalDescription, "description", "d", "", "What you are trying to discover; used to weigh article importance")

	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalShow(_ *cobra.Command, _ []string) error {
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

	observability.NewPrinter(os.Stdout).PrintGoal(application.Goal())
	return nil
}

func runGoalSet(_ *cobra.Command, _ []string) error {
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

	// Editing a single field keeps the other one as persisted.
	goal := application.Goal()
	if goalTopic != "" {
		goal.Topic = goalTopic
	}
	if goalDescription != "" {
		goal.Description = goalDescription
	}

	if err := application.SetGoal(ctx, goal); err != nil {
		return fmt.Errorf("failed to save research goal: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintGoal(goal)
	return nil
}

// requireTopic surfaces the silent-precondition rule as a friendly message.
func requireTopic(goal types.ResearchGoal) bool {
	if goal.Topic == "" {
		fmt.Fprintln(os.Stderr, "No research goal set. Run: researchflow goal set --topic \"...\"")
		return false
	}
	return true
}
