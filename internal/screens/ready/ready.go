// Package ready is the launch screen shown once cards are ingested.
package ready

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

const previewInterval = 2500 * time.Millisecond

type previewMsg time.Time

// ReadyScreen summarizes the deck and starts the review.
type ReadyScreen struct {
	cards   []deck.Card
	streak  int
	err     error
	preview int
	started bool
}

var _ screen.Screen = (*ReadyScreen)(nil)
var _ screen.KeyHintProvider = (*ReadyScreen)(nil)

// New creates the screen. err is a problem from an aborted review.
func New(cards []deck.Card, streak int, err error) *ReadyScreen {
	return &ReadyScreen{cards: cards, streak: streak, err: err}
}

// EstimatedMinutes is half a minute per card, rounded up.
func EstimatedMinutes(n int) int {
	return int(math.Ceil(float64(n) * 0.5))
}

func (s *ReadyScreen) Title() string { return "Ready" }

func (s *ReadyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ReadyScreen) Init() tea.Cmd {
	if len(s.cards) < 2 {
		return nil
	}
	return nextPreview()
}

func nextPreview() tea.Cmd {
	return tea.Tick(previewInterval, func(t time.Time) tea.Msg { return previewMsg(t) })
}

func (s *ReadyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case previewMsg:
		if len(s.cards) == 0 {
			return s, nil
		}
		s.preview = (s.preview + 1) % len(s.cards)
		return s, nextPreview()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "space", " ":
			if s.started {
				return s, nil
			}
			s.started = true
			return s, screen.Fire(journey.StartReview{})
		}
	}
	return s, nil
}

func (s *ReadyScreen) View(width, height int) string {
	n := len(s.cards)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Ready to Grasp"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d concepts ready to master", n)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Bite-sized brilliance awaits"))
	b.WriteString("\n\n")

	stats := []string{
		stat(fmt.Sprint(n), "Concepts"),
		stat(fmt.Sprintf("~%dm", EstimatedMinutes(n)), "Duration"),
		stat(fmt.Sprintf("%d", s.streak), "Streak"),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	b.WriteString("\n\n")

	if n > 0 {
		b.WriteString(s.renderPreview(min(width-8, 56)))
		b.WriteString("\n\n")
	}

	if s.err != nil {
		b.WriteString(theme.Problem.Render("Last review stopped: " + s.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.ButtonActive.Render("🚀 Start Your Daily Grasp"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Swipe through concepts at your own pace"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func stat(value, label string) string {
	return lipgloss.NewStyle().Width(14).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n" +
			theme.Hint.Render(label),
	)
}

func (s *ReadyScreen) renderPreview(width int) string {
	c := s.cards[s.preview]
	header := theme.Badge.Render(string(c.Kind))
	if c.Difficulty != "" {
		header += " " + theme.Hint.Render(string(c.Difficulty))
	}
	body := header + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title) + "\n\n" +
		theme.Hint.Render("← Skip   ↑ Save   Love →")
	return theme.Card.Width(width).Render(body)
}
