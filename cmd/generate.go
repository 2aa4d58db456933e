package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/corelearn/internal/generator"
	"github.com/abhisek/corelearn/internal/llm"
	"github.com/abhisek/corelearn/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a course without starting the TUI",
	Long:  "Generate a full course for the topic and save it for later. Use --out to also write the course JSON to a file (\"-\" for stdout).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		eventRepo := st.EventRepo()

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}
		gen := generator.NewService(provider, generator.DefaultConfig())

		fmt.Fprintf(os.Stderr, "Generating course on %q...\n", topic)
		crs, err := gen.GenerateCourse(ctx, topic, title)
		if err != nil {
			return fmt.Errorf("generate course: %w", err)
		}

		data, err := json.MarshalIndent(crs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode course: %w", err)
		}

		_ = eventRepo.AppendCourseEvent(ctx, store.CourseEventData{
			Topic:             topic,
			Title:             crs.Title,
			Difficulty:        string(crs.Difficulty),
			ModuleCount:       len(crs.Modules),
			LessonCount:       crs.TotalLessons(),
			ExamQuestionCount: len(crs.FinalExam.Questions),
			Model:             gen.ModelID(),
		})
		if err := st.CourseRepo().Save(ctx, &store.SavedCourse{
			Topic: topic,
			Title: crs.Title,
			Data:  data,
		}); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: course not saved for resume:", err)
		}

		switch out {
		case "":
		case "-":
			fmt.Println(string(data))
		default:
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintln(os.Stderr, "Wrote", out)
		}

		fmt.Fprintf(os.Stderr, "Generated %q: %d modules, %d lessons, %d exam questions.\n",
			crs.Title, len(crs.Modules), crs.TotalLessons(), len(crs.FinalExam.Questions))
		fmt.Fprintln(os.Stderr, "Run `corelearn` and press Ctrl+R to start it.")
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "Write the course JSON to this file (\"-\" for stdout)")
	generateCmd.Flags().StringP("title", "t", "", "Use this course title instead of letting the model pick one")
}
