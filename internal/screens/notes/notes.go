// Package notes lists the cards archived during a session.
package notes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// NotesScreen browses saved cards.
type NotesScreen struct {
	cards    []deck.Card
	selected int
}

var _ screen.Screen = (*NotesScreen)(nil)
var _ screen.KeyHintProvider = (*NotesScreen)(nil)

func New(cards []deck.Card) *NotesScreen {
	return &NotesScreen{cards: cards}
}

func (s *NotesScreen) Title() string { return "Saved notes" }

func (s *NotesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NotesScreen) Init() tea.Cmd { return nil }

// Selected returns the index of the highlighted note.
func (s *NotesScreen) Selected() int { return s.selected }

func (s *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.cards)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *NotesScreen) View(width, height int) string {
	if len(s.cards) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No saved notes this session"))
	}

	listWidth := min(width/3, 30)
	var list strings.Builder
	for i, c := range s.cards {
		line := fmt.Sprintf("%d. %s", i+1, c.Title)
		if i == s.selected {
			list.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			list.WriteString(theme.Unselected.Render("  " + line))
		}
		list.WriteString("\n")
	}

	c := s.cards[s.selected]
	detailWidth := max(width-listWidth-8, 20)
	detail := theme.Badge.Render(string(c.Kind)) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(detailWidth-6).Render(c.Body)
	if len(c.Tags) > 0 {
		detail += "\n\n" + theme.Tag.Render("#"+strings.Join(c.Tags, " #"))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(list.String()),
		"  ",
		theme.Card.Width(detailWidth).Render(detail),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
