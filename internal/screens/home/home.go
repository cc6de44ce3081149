package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/truthcom/learnmate/internal/router"
	"github.com/truthcom/learnmate/internal/screen"
	"github.com/truthcom/learnmate/internal/screens/courses"
	"github.com/truthcom/learnmate/internal/screens/newcourse"
	"github.com/truthcom/learnmate/internal/screens/study"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/ui/components"
	"github.com/truthcom/learnmate/internal/ui/layout"
	"github.com/truthcom/learnmate/internal/ui/theme"
)

const planPreviewLines = 12

// HomeScreen is the landing screen for a signed-in session.
type HomeScreen struct {
	svc       *session.Service
	sessionID string
	doc       *session.Document
	isNew     bool

	menu          components.Menu
	confirmingDel bool
	statusMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.SessionInfoProvider = (*HomeScreen)(nil)

// New creates a HomeScreen for a loaded session document.
func New(svc *session.Service, sessionID string, doc *session.Document, isNew bool) *HomeScreen {
	h := &HomeScreen{
		svc:       svc,
		sessionID: sessionID,
		doc:       doc,
		isNew:     isNew,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	hasLast := h.doc.LastCourse() != nil
	hasAny := len(h.doc.Courses) > 0

	return []components.MenuItem{
		{Label: "NEW STUDY PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: newcourse.New(h.svc, h.sessionID, h.doc),
				}
			}
		}},
		{Label: "CONTINUE LAST COURSE", Disabled: !hasLast, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: study.New(h.svc, h.sessionID, h.doc, h.doc.LastAccessedCourse),
				}
			}
		}},
		{Label: "MY COURSES", Disabled: !hasAny, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: courses.New(h.svc, h.sessionID, h.doc),
				}
			}
		}},
		{Label: "ERASE SESSION DATA", Disabled: !hasAny, Action: func() tea.Cmd {
			h.confirmingDel = true
			return nil
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) SessionInfo() string {
	info := h.sessionID
	if course := h.doc.LastCourse(); course != nil {
		info += fmt.Sprintf(" (%s, %s)",
			course.Level, layout.TruncateCourse(course.CourseName, 10))
	}
	return info
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmingDel {
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase everything"},
			{Key: "N", Description: "Keep my data"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.confirmingDel {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				h.confirmingDel = false
				if h.svc.Delete(context.Background(), h.sessionID) {
					h.doc = session.NewDocument()
					h.statusMsg = "Session data erased."
				} else {
					h.statusMsg = "Nothing to erase."
				}
				h.isNew = true
				h.menu = components.NewMenu(h.menuItems())
			case "n", "N", "esc":
				h.confirmingDel = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := fmt.Sprintf("Welcome back, %s!", h.sessionID)
	if h.isNew {
		greeting = fmt.Sprintf("Nice to meet you, %s!", h.sessionID)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(greeting))

	if h.statusMsg != "" {
		sections = append(sections, theme.Hint.Render(h.statusMsg))
	}

	if h.confirmingDel {
		warning := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("Erase all stored courses for this session?") +
				"\n\n" + theme.Body.Render("This cannot be undone. [y/n]"))
		sections = append(sections, "", warning)
		return center(strings.Join(sections, "\n"), width, height)
	}

	if course := h.doc.LastCourse(); course != nil {
		sections = append(sections, "", renderLastPlan(course))
	}

	sections = append(sections, "", h.menu.View())

	return center(strings.Join(sections, "\n"), width, height)
}

// renderLastPlan shows the most recent course and the head of its plan.
func renderLastPlan(course *session.Course) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Last plan: %s - %s, %d days",
			course.CourseName, course.Level, course.Duration))

	lines := strings.Split(course.StudyPlan, "\n")
	if len(lines) > planPreviewLines {
		lines = append(lines[:planPreviewLines], "...")
	}
	body := theme.Body.Render(strings.Join(lines, "\n"))

	return theme.Card.Render(title + "\n\n" + body)
}

func center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
