package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/truthcom/learnmate/internal/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored sessions and their courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := session.NewStore(resolveSessionsDir(cmd))

		ids, err := st.List()
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No stored sessions.")
			return nil
		}

		for _, id := range ids {
			doc := st.Load(id)
			fmt.Printf("%s  (%d courses)\n", id, len(doc.Courses))
			for _, course := range doc.Courses {
				fmt.Printf("    %s - %s, %d days, last opened %s\n",
					course.CourseName, course.Level, course.Duration, course.LastAccess)
			}
		}
		return nil
	},
}
