package study

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/truthcom/learnmate/internal/router"
	"github.com/truthcom/learnmate/internal/screen"
	"github.com/truthcom/learnmate/internal/session"
	"github.com/truthcom/learnmate/internal/ui/components"
	"github.com/truthcom/learnmate/internal/ui/layout"
	"github.com/truthcom/learnmate/internal/ui/theme"
)

const transcriptShown = 3

// dayContentMsg is sent when a day's lesson has been fetched.
type dayContentMsg struct {
	Day     int
	Content string
	Err     error
}

// answerMsg is sent when a follow-up question has been answered.
type answerMsg struct {
	Err error
}

// Screen drives one course: day-by-day lessons plus the Q&A loop.
type Screen struct {
	svc       *session.Service
	sessionID string
	doc       *session.Document
	courseID  string

	day        int
	content    viewport.Model
	hasContent bool
	question   components.TextInput
	asking     bool // question input focused
	busy       bool
	spinner    components.Spinner
	errMsg     string

	width  int
	height int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.SessionInfoProvider = (*Screen)(nil)

// New creates a study screen opened at the course's last visited day.
func New(svc *session.Service, sessionID string, doc *session.Document, courseID string) *Screen {
	course := doc.Courses[courseID]
	day := 1
	if course != nil {
		day = course.LastDay()
	}

	s := &Screen{
		svc:       svc,
		sessionID: sessionID,
		doc:       doc,
		courseID:  courseID,
		day:       day,
		content:   viewport.New(),
		question:  components.NewTextInput("Ask a question about today's material...", false, 200),
		spinner:   components.NewSpinner("Working on it..."),
	}
	s.question.Model.Blur()
	return s
}

func (s *Screen) course() *session.Course {
	return s.doc.Courses[s.courseID]
}

func (s *Screen) Init() tea.Cmd {
	return s.loadDay(s.day)
}

func (s *Screen) Title() string {
	if course := s.course(); course != nil {
		return course.CourseName
	}
	return "Study"
}

func (s *Screen) SessionInfo() string {
	course := s.course()
	if course == nil {
		return s.sessionID
	}
	return fmt.Sprintf("%s (%s, %s)",
		s.sessionID, course.Level, layout.TruncateCourse(course.StudyContent, 10))
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{}
	}
	if s.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Tab", Description: "Back to lesson"},
		}
	}
	return []layout.KeyHint{
		{Key: "←/→", Description: "Change day"},
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Tab", Description: "Ask a question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dayContentMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not load day %d: %v", msg.Day, msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.day = msg.Day
		s.hasContent = true
		s.content.SetContent(msg.Content)
		s.content.GotoTop()
		return s, nil

	case answerMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not answer: %v", msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.question = components.NewTextInput("Ask a question about today's material...", false, 200)
		return s, s.question.Init()
	}

	if s.busy {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			if s.asking {
				s.asking = false
				s.question.Model.Blur()
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.asking = !s.asking
			if s.asking {
				return s, s.question.Model.Focus()
			}
			s.question.Model.Blur()
			return s, nil
		}

		if s.asking {
			if kmsg.String() == "enter" {
				return s, s.ask()
			}
			var cmd tea.Cmd
			s.question, cmd = s.question.Update(msg)
			return s, cmd
		}

		switch kmsg.String() {
		case "left", "h":
			if s.day > 1 {
				return s, s.loadDay(s.day - 1)
			}
			return s, nil
		case "right", "l":
			if course := s.course(); course != nil && s.day < course.Duration {
				return s, s.loadDay(s.day + 1)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.content, cmd = s.content.Update(msg)
	return s, cmd
}

func (s *Screen) loadDay(day int) tea.Cmd {
	s.busy = true
	s.spinner.Label = fmt.Sprintf("Preparing day %d...", day)
	return tea.Batch(
		s.spinner.Init(),
		func() tea.Msg {
			content, err := s.svc.DailyContent(context.Background(), s.sessionID, s.doc, s.courseID, day)
			return dayContentMsg{Day: day, Content: content, Err: err}
		},
	)
}

func (s *Screen) ask() tea.Cmd {
	question := strings.TrimSpace(s.question.Value())
	if question == "" {
		return nil
	}
	s.busy = true
	s.spinner.Label = "Thinking about your question..."
	day := s.day
	return tea.Batch(
		s.spinner.Init(),
		func() tea.Msg {
			_, err := s.svc.Ask(context.Background(), s.sessionID, s.doc, s.courseID, day, question)
			return answerMsg{Err: err}
		},
	)
}

func (s *Screen) View(width, height int) string {
	s.width = width
	s.height = height

	course := s.course()
	if course == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("This course no longer exists."))
	}

	var sections []string
	sections = append(sections, s.renderDayBar(course, width))

	if s.busy {
		sections = append(sections, "", s.spinner.View())
		return strings.Join(sections, "\n")
	}

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	transcript := s.renderTranscript(course)
	transcriptHeight := lipgloss.Height(transcript)

	// Day bar (2) + question row (2) + padding.
	contentHeight := height - transcriptHeight - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	s.content.SetWidth(width - 4)
	s.content.SetHeight(contentHeight)

	if s.hasContent {
		sections = append(sections, s.content.View())
	}

	sections = append(sections, "", s.renderQuestionRow())
	if transcript != "" {
		sections = append(sections, transcript)
	}

	return strings.Join(sections, "\n")
}

func (s *Screen) renderDayBar(course *session.Course, width int) string {
	bar := components.NewProgressBar(
		fmt.Sprintf("  Day %d of %d", s.day, course.Duration),
		float64(s.day)/float64(course.Duration),
		false,
		width/2,
	)
	return bar.View() + "\n"
}

func (s *Screen) renderQuestionRow() string {
	label := theme.Hint.Render("  tab to ask a question")
	if s.asking {
		label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Your question:")
	}
	return label + "\n  " + s.question.View()
}

// renderTranscript shows the newest follow-up exchanges first.
func (s *Screen) renderTranscript(course *session.Course) string {
	if len(course.QAHistory) == 0 {
		return ""
	}

	shown := course.QAHistory
	if len(shown) > transcriptShown {
		shown = shown[:transcriptShown]
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("  Recent questions (newest first):"))
	for _, qa := range shown {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("  Q (day %d): %s", qa.Day, qa.Question)))
		b.WriteString("\n")
		answer := qa.Answer
		if idx := strings.IndexByte(answer, '\n'); idx >= 0 {
			answer = answer[:idx] + " ..."
		}
		b.WriteString(theme.Body.Render("  A: " + answer))
	}
	return b.String()
}
