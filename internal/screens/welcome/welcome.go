// Package welcome is the first screen: it asks for a document to turn
// into cards.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/ui/components"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// sparkle frames cycle beside the banner
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// Opener loads the document at path.
type Opener func(path string) (ingest.Document, error)

// WelcomeScreen collects a document path and submits it.
type WelcomeScreen struct {
	open      Opener
	demo      bool
	input     components.TextInput
	tickCount int
	submitted bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. With demo set, an empty path submits the
// built-in sample deck.
func New(open Opener, demo bool) *WelcomeScreen {
	placeholder := "path/to/notes.md"
	if demo {
		placeholder += " (leave empty for the demo deck)"
	}
	return &WelcomeScreen{
		open:  open,
		demo:  demo,
		input: components.NewTextInput(placeholder, 48),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Transform"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) submit() tea.Cmd {
	if w.submitted {
		return nil
	}
	path := w.input.Value()
	if path == "" {
		if !w.demo {
			w.input.SetError("enter the path of a text document")
			return nil
		}
		w.submitted = true
		return screen.Fire(journey.SubmitDocument{Doc: ingest.NewDocument("demo deck", "")})
	}

	doc, err := w.open(path)
	if err != nil {
		w.input.SetError(err.Error())
		return nil
	}
	w.submitted = true
	return screen.Fire(journey.SubmitDocument{Doc: doc})
}

func (w *WelcomeScreen) View(width, height int) string {
	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)

	sections := []string{
		RenderBanner(width),
		"",
		accent + "  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Transform documents into bite-sized brilliance") + "  " + accent,
		theme.Subtitle.Render("Swipe through micro-lessons: → got it, ← skip, ↑ save as note"),
		"",
		w.input.View(),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
