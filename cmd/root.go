package cmd

import (
	"github.com/spf13/cobra"

	"github.com/truthcom/learnmate/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnmate",
	Short: "AI study planner in your terminal",
	Long:  "LearnMate generates a personalized day-by-day study plan for anything you want to learn, keeps your progress per session, and answers follow-up questions at your level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNMATE_DB env var)")
	rootCmd.PersistentFlags().String("sessions", "", "Path to the sessions directory (overrides LEARNMATE_SESSIONS env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNMATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
