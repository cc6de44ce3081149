package newcourse

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/truthcom/learnmate/internal/router"
	"github.com/truthcom/learnmate/internal/screen"
	"github.com/truthcom/learnmate/internal/screens/study"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/tutor"
	"github.com/truthcom/learnmate/internal/ui/components"
	"github.com/truthcom/learnmate/internal/ui/layout"
	"github.com/truthcom/learnmate/internal/ui/theme"
)

// Form focus slots, in tab order.
const (
	focusName = iota
	focusContent
	focusLevel
	focusGenerate
	focusCount
)

// courseCreatedMsg is sent when plan generation has finished.
type courseCreatedMsg struct {
	CourseID string
	Err      error
}

// Screen collects a course name, study content and difficulty level,
// then generates the study plan.
type Screen struct {
	svc       *session.Service
	sessionID string
	doc       *session.Document

	nameInput  components.TextInput
	content    textarea.Model
	levelIdx   int
	focus      int
	generating bool
	spinner    components.Spinner
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.SessionInfoProvider = (*Screen)(nil)

// New creates the course creation form.
func New(svc *session.Service, sessionID string, doc *session.Document) *Screen {
	ta := textarea.New()
	ta.Placeholder = "e.g. Python basics through building a small web app"
	ta.SetHeight(4)
	ta.SetWidth(56)
	ta.CharLimit = 2000

	return &Screen{
		svc:       svc,
		sessionID: sessionID,
		doc:       doc,
		nameInput: components.NewTextInput("What do you want to learn?", false, 60),
		content:   ta,
		levelIdx:  int(tutor.LevelUpperElementary) - 1,
		spinner:   components.NewSpinner("Generating your study plan..."),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *Screen) Title() string {
	return "New Study Plan"
}

func (s *Screen) SessionInfo() string {
	return s.sessionID
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	if s.focus == focusLevel {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Change level"})
	}
	if s.focus == focusGenerate {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Generate plan"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.generating {
		switch msg := msg.(type) {
		case courseCreatedMsg:
			s.generating = false
			if msg.Err != nil {
				s.errMsg = fmt.Sprintf("Plan generation failed: %v", msg.Err)
				return s, nil
			}
			next := study.New(s.svc, s.sessionID, s.doc, msg.CourseID)
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		default:
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.focus = (s.focus + 1) % focusCount
			return s, s.focusCmd()
		case "shift+tab":
			s.focus = (s.focus + focusCount - 1) % focusCount
			return s, s.focusCmd()
		}

		switch s.focus {
		case focusLevel:
			switch kmsg.String() {
			case "left", "h", "up", "k":
				if s.levelIdx > 0 {
					s.levelIdx--
				}
			case "right", "l", "down", "j":
				if s.levelIdx < len(tutor.Levels)-1 {
					s.levelIdx++
				}
			}
			return s, nil
		case focusGenerate:
			if kmsg.String() == "enter" {
				return s, s.generate()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.nameInput, cmd = s.nameInput.Update(msg)
	case focusContent:
		s.content, cmd = s.content.Update(msg)
	}
	return s, cmd
}

func (s *Screen) focusCmd() tea.Cmd {
	s.nameInput.Model.Blur()
	s.content.Blur()
	switch s.focus {
	case focusName:
		return s.nameInput.Model.Focus()
	case focusContent:
		return s.content.Focus()
	}
	return nil
}

func (s *Screen) generate() tea.Cmd {
	name := strings.TrimSpace(s.nameInput.Value())
	contentText := strings.TrimSpace(s.content.Value())
	if name == "" {
		s.errMsg = "Please enter a course name!"
		return nil
	}
	if contentText == "" {
		s.errMsg = "Please describe what you want to study!"
		return nil
	}
	s.errMsg = ""
	s.generating = true

	level := tutor.Levels[s.levelIdx].String()
	input := tutor.PlanInput{
		CourseName:   name,
		Level:        level,
		StudyContent: contentText,
	}

	return tea.Batch(
		s.spinner.Init(),
		func() tea.Msg {
			id, _, err := s.svc.CreateCourse(context.Background(), s.sessionID, s.doc, input)
			return courseCreatedMsg{CourseID: id, Err: err}
		},
	)
}

func (s *Screen) View(width, height int) string {
	if s.generating {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.spinner.View())
	}

	var b strings.Builder

	b.WriteString(s.renderField(focusName, "Course name", s.nameInput.View()))
	b.WriteString("\n")
	b.WriteString(s.renderField(focusContent, "What to study", s.content.View()))
	b.WriteString("\n")
	b.WriteString(s.renderField(focusLevel, "Difficulty level", s.renderLevelPicker()))
	b.WriteString("\n\n")

	button := components.NewButton("Generate study plan", s.focus == focusGenerate, nil)
	b.WriteString(button.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *Screen) renderField(slot int, label, body string) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == slot {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label) + "\n" + body + "\n"
}

func (s *Screen) renderLevelPicker() string {
	level := tutor.Levels[s.levelIdx]
	arrowL := "  "
	arrowR := "  "
	if s.levelIdx > 0 {
		arrowL = "◀ "
	}
	if s.levelIdx < len(tutor.Levels)-1 {
		arrowR = " ▶"
	}
	return theme.Selected.Render(arrowL+level.String()+arrowR) +
		"  " + theme.Hint.Render(fmt.Sprintf("%d of %d", s.levelIdx+1, len(tutor.Levels)))
}
