package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/truthcom/learnmate/internal/app"
	"github.com/truthcom/learnmate/internal/llm"
	"github.com/truthcom/learnmate/internal/observability"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/store"
	"github.com/truthcom/learnmate/internal/tutor"
)

// resolveSessionsDir returns the sessions directory using the --sessions
// flag, then LEARNMATE_SESSIONS, then ./sessions.
func resolveSessionsDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("sessions"); dir != "" {
		return dir
	}
	return session.DefaultDir()
}

// runApp opens the stores, builds dependencies, and launches the TUI.
// A missing API key for the selected provider is fatal; a broken event
// log only loses observability, so it is reported and skipped.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logPath, err := observability.DefaultLogPath()
	if err == nil {
		if closeLog, logErr := observability.Init(logPath, observability.DefaultRotateBytes); logErr == nil {
			defer closeLog()
		}
	}

	var events store.EventRepo
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if st, openErr := store.Open(dbPath); openErr == nil {
			defer st.Close()
			if repo, repoErr := st.EventRepo(); repoErr == nil {
				events = repo
			} else {
				fmt.Fprintln(os.Stderr, "Event log unavailable:", repoErr)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Event log unavailable:", openErr)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Event log unavailable:", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	sessions := session.NewService(
		session.NewStore(resolveSessionsDir(cmd)),
		tutor.NewService(provider, tutor.DefaultConfig()),
		events,
	)

	return app.Run(app.Options{Sessions: sessions})
}
