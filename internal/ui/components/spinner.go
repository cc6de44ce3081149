package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/truthcom/learnmate/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with a label for blocking operations.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with the given label.
func NewSpinner(label string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return Spinner{Model: s, Label: label}
}

// Init starts the spinner animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner and its label.
func (s Spinner) View() string {
	return s.Model.View() + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
}
