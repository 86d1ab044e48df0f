// Package complete shows the results of a finished review session.
package complete

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/router"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/screens/notes"
	"github.com/abhisek/conceptswipe/internal/session"
	"github.com/abhisek/conceptswipe/internal/share"
	"github.com/abhisek/conceptswipe/internal/ui/components"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// Count-up animation: 60 steps over 1.5s.
const (
	animSteps    = 60
	animInterval = 25 * time.Millisecond
)

type animMsg struct{}

type sharedMsg struct {
	text string
	err  error
}

// Sharer publishes a session summary.
type Sharer interface {
	Share(rec *session.Record) (string, error)
}

// CompleteScreen shows stats, encouragement and follow-up actions.
type CompleteScreen struct {
	rec    *session.Record
	streak int
	sharer Sharer

	step   int
	menu   components.Menu
	status string
}

var _ screen.Screen = (*CompleteScreen)(nil)
var _ screen.KeyHintProvider = (*CompleteScreen)(nil)

// New creates the screen. sharer may be nil when sharing is unavailable.
func New(rec *session.Record, streak int, sharer Sharer) *CompleteScreen {
	s := &CompleteScreen{rec: rec, streak: streak, sharer: sharer}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "🚀 Start new session", Action: func() tea.Cmd { return screen.Fire(journey.NewSession{}) }},
		{Label: "Share", Action: s.share, Disabled: sharer == nil},
		{Label: fmt.Sprintf("Saved notes (%d)", len(rec.ArchivedCards)), Action: s.openNotes, Disabled: len(rec.ArchivedCards) == 0},
	})
	return s
}

func (s *CompleteScreen) Title() string { return "Session complete" }

func (s *CompleteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *CompleteScreen) Init() tea.Cmd { return animate() }

func animate() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg { return animMsg{} })
}

func (s *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animMsg:
		if s.step >= animSteps {
			return s, nil
		}
		s.step++
		if s.step == animSteps {
			return s, nil
		}
		return s, animate()

	case sharedMsg:
		if msg.err != nil {
			s.status = theme.Problem.Render("Could not share: " + msg.err.Error())
		} else {
			s.status = theme.Ok.Render("Copied to clipboard: ") + theme.Hint.Render(msg.text)
		}
		return s, nil

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CompleteScreen) share() tea.Cmd {
	rec, sharer := s.rec, s.sharer
	return func() tea.Msg {
		text, err := sharer.Share(rec)
		return sharedMsg{text: text, err: err}
	}
}

func (s *CompleteScreen) openNotes() tea.Cmd {
	n := notes.New(s.rec.ArchivedCards)
	return func() tea.Msg { return router.PushScreenMsg{Screen: n} }
}

// animated scales v by the count-up progress.
func (s *CompleteScreen) animated(v int) int {
	return int(math.Round(float64(v) * float64(s.step) / animSteps))
}

func (s *CompleteScreen) View(width, height int) string {
	st := s.rec.Stats

	var b strings.Builder
	b.WriteString(theme.Title.Render("🏆 Session Complete!"))
	b.WriteString("\n\n")

	percent, ok := st.MasteryPercent()
	if ok {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("%d%% mastery rate", s.animated(percent))))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(session.PerformanceMessage(percent)))
	} else {
		b.WriteString(theme.Hint.Render("— mastery rate"))
	}
	b.WriteString("\n\n")

	cells := []string{
		cell(fmt.Sprint(s.animated(st.Accepted)), "Grasped", theme.Accepted),
		cell(fmt.Sprint(s.animated(st.Archived)), "Saved", theme.Archived),
		cell(fmt.Sprint(st.Rejected), "Skipped", theme.Rejected),
		cell(share.Clock(s.animated(st.ElapsedSeconds)), "Time", theme.Body),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteString("\n\n")

	speed := "—"
	if cpm, ok := st.CardsPerMinute(); ok {
		speed = fmt.Sprintf("%d cards/min", cpm)
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Learning speed: %s   Retention: %s   Streak: %d",
		speed, session.RetentionOf(st), s.streak)))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(s.status)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func cell(value, label string, style lipgloss.Style) string {
	return lipgloss.NewStyle().Width(12).Align(lipgloss.Center).Render(
		style.Render(value) + "\n" + theme.Hint.Render(label),
	)
}
