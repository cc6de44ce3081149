package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/truthcom/learnmate/internal/llm"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/tutor"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate a study plan without storing anything (no TUI, no database)",
	Long: `Generate a study plan for a course and print it to stdout.

This is a stateless developer tool. Nothing is persisted and no events
are logged. Useful for evaluating plan quality and tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("course", "", "Course name (required)")
	previewCmd.Flags().String("content", "", "What to study (required)")
	previewCmd.Flags().Int("level", int(tutor.LevelUpperElementary), "Difficulty level 1-7")
	previewCmd.Flags().Int("day", 0, "Also generate the lesson for this day")
	_ = previewCmd.MarkFlagRequired("course")
	_ = previewCmd.MarkFlagRequired("content")
}

func runPreview(cmd *cobra.Command, args []string) error {
	courseName, _ := cmd.Flags().GetString("course")
	content, _ := cmd.Flags().GetString("content")
	levelNum, _ := cmd.Flags().GetInt("level")
	day, _ := cmd.Flags().GetInt("day")

	level := tutor.Level(levelNum)
	if !level.Valid() {
		return fmt.Errorf("invalid level %d: must be 1-7", levelNum)
	}

	// No event repo: logging is skipped for previews.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	svc := tutor.NewService(provider, tutor.DefaultConfig())

	fmt.Printf("Course: %s (%s)\n", courseName, level)
	fmt.Println("Generating plan...")
	fmt.Println()

	plan, err := svc.GeneratePlan(ctx, tutor.PlanInput{
		CourseName:   courseName,
		Level:        level.String(),
		StudyContent: content,
	})
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}

	duration := session.ParseDuration(plan)

	fmt.Println(strings.Repeat("─", 72))
	fmt.Println(plan)
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Parsed duration: %d days\n", duration)

	if day <= 0 {
		return nil
	}
	if day > duration {
		return fmt.Errorf("day %d is outside the %d-day plan", day, duration)
	}

	fmt.Printf("\nGenerating lesson for day %d...\n\n", day)
	lesson, err := svc.GenerateDaily(ctx, tutor.DailyInput{
		CourseName:   courseName,
		Level:        level.String(),
		StudyContent: content,
		Day:          day,
	})
	if err != nil {
		return fmt.Errorf("generate daily content: %w", err)
	}

	fmt.Println(strings.Repeat("─", 72))
	fmt.Println(lesson)
	fmt.Println(strings.Repeat("─", 72))
	return nil
}
