package courses

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/truthcom/learnmate/internal/router"
	"github.com/truthcom/learnmate/internal/screen"
	"github.com/truthcom/learnmate/internal/screens/study"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/ui/components"
	"github.com/truthcom/learnmate/internal/ui/layout"
	"github.com/truthcom/learnmate/internal/ui/theme"
)

// Screen lists the session's stored courses, most recent first.
type Screen struct {
	svc       *session.Service
	sessionID string
	doc       *session.Document
	menu      components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.SessionInfoProvider = (*Screen)(nil)

// New creates the course list screen.
func New(svc *session.Service, sessionID string, doc *session.Document) *Screen {
	s := &Screen{svc: svc, sessionID: sessionID, doc: doc}

	type entry struct {
		id     string
		course *session.Course
	}
	entries := make([]entry, 0, len(doc.Courses))
	for id, course := range doc.Courses {
		entries = append(entries, entry{id, course})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].course.LastAccess != entries[j].course.LastAccess {
			return entries[i].course.LastAccess > entries[j].course.LastAccess
		}
		return entries[i].id < entries[j].id
	})

	items := make([]components.MenuItem, 0, len(entries))
	for _, e := range entries {
		id := e.id
		label := fmt.Sprintf("%s - %s, %d days (last opened %s)",
			e.course.CourseName, e.course.Level, e.course.Duration, e.course.LastAccess)
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{
						Screen: study.New(svc, sessionID, doc, id),
					}
				}
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "My Courses"
}

func (s *Screen) SessionInfo() string {
	return s.sessionID
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open course"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Stored courses: %d", len(s.doc.Courses)))

	content := title + "\n\n" + s.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
