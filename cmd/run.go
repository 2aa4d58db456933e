package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/corelearn/internal/app"
	"github.com/abhisek/corelearn/internal/generator"
	"github.com/abhisek/corelearn/internal/llm"
	"github.com/abhisek/corelearn/internal/store"
	"github.com/abhisek/corelearn/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:  eventRepo,
		CourseRepo: st.CourseRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Course generation and tutoring will be unavailable.")
	} else {
		opts.Generator = generator.NewService(provider, generator.DefaultConfig())
		opts.Tutor = tutor.NewService(provider)
	}

	return app.Run(opts)
}

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start the interactive course player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
