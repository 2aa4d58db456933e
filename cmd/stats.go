package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/corelearn/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		courses, err := s.EventRepo().QueryCourseEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query course events: %w", err)
		}
		exams, err := s.EventRepo().QueryExamEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query exam events: %w", err)
		}

		if len(courses) == 0 && len(exams) == 0 {
			fmt.Println("Nothing recorded yet. Run `corelearn` to generate your first course.")
			return nil
		}

		passes := 0
		percentSum := 0
		for _, e := range exams {
			if e.Passed {
				passes++
			}
			percentSum += e.Percentage
		}

		fmt.Printf("Courses generated:  %d\n", len(courses))
		fmt.Printf("Exam attempts:      %d\n", len(exams))
		fmt.Printf("Exams passed:       %d\n", passes)
		if len(exams) > 0 {
			fmt.Printf("Average score:      %d%%\n", percentSum/len(exams))
		}

		if len(courses) > 0 {
			fmt.Println()
			fmt.Println("Recent Courses")
			fmt.Println(strings.Repeat("─", 88))
			fmt.Printf("%-19s  %-34s  %-10s  %4s  %4s\n",
				"Generated", "Title", "Difficulty", "Mods", "Lsns")
			fmt.Println(strings.Repeat("─", 88))
			max := len(courses)
			if max > 10 {
				max = 10
			}
			for _, e := range courses[:max] {
				fmt.Printf("%-19s  %-34s  %-10s  %4d  %4d\n",
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					truncate(e.Title, 34),
					e.Difficulty,
					e.ModuleCount,
					e.LessonCount,
				)
			}
		}
		return nil
	},
}
