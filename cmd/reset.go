package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truthcom/learnmate/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Erase a session's stored courses and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		st := session.NewStore(resolveSessionsDir(cmd))

		if !st.Delete(id) {
			return fmt.Errorf("no stored data for session %q", id)
		}
		fmt.Printf("Session %q erased.\n", id)
		return nil
	},
}
