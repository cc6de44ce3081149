package welcome

import (
	"context"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/truthcom/learnmate/internal/router"
	"github.com/truthcom/learnmate/internal/screen"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/ui/components"
	"github.com/truthcom/learnmate/internal/ui/layout"
	"github.com/truthcom/learnmate/internal/ui/theme"
)

const usageGuide = `How it works:

1. Enter a session id. Your courses and progress are stored
   under it, so the same id picks up where you left off.
2. Create a course: what to study, how deep, and at which of
   the seven difficulty levels.
3. A day-by-day study plan is generated. Open any day to get
   that day's lesson.
4. Ask follow-up questions at any time. Answers are kept in
   the course transcript, newest first.`

// WelcomeScreen asks for a session id and loads its stored document.
type WelcomeScreen struct {
	svc         *session.Service
	homeFactory func(sessionID string, doc *session.Document, isNew bool) screen.Screen
	input       components.TextInput
	showGuide   bool
	errMsg      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced
// by homeFactory once a session id has been entered.
func New(svc *session.Service, homeFactory func(sessionID string, doc *session.Document, isNew bool) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		svc:         svc,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Enter your session id...", false, 40),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign in"},
		{Key: "Tab", Description: "Usage guide"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			return w, w.signIn()
		case "tab":
			w.showGuide = !w.showGuide
			return w, nil
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) signIn() tea.Cmd {
	id := strings.TrimSpace(w.input.Value())
	if id == "" {
		w.errMsg = "Please enter a session id!"
		return nil
	}
	w.errMsg = ""

	_, statErr := os.Stat(w.svc.Store().Path(id))
	isNew := statErr != nil
	doc := w.svc.Load(context.Background(), id)

	next := w.homeFactory(id, doc, isNew)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Your personal AI study planner")
	sections = append(sections, tagline, "")

	inputBox := theme.Card.Render(w.input.View())
	sections = append(sections, inputBox)

	if w.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}

	if w.showGuide {
		sections = append(sections, "", theme.Card.Render(theme.Body.Render(usageGuide)))
	} else {
		hint := theme.Hint.Render("press tab for the usage guide")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
