// Package screen defines the contract between the app and its screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EventMsg asks the app to fire a journey event. Screens never touch the
// machine directly.
type EventMsg struct {
	Event journey.Event
}

// Fire returns a command that emits EventMsg for ev.
func Fire(ev journey.Event) tea.Cmd {
	return func() tea.Msg { return EventMsg{Event: ev} }
}

// AppliedMsg is delivered to the active screen once the app has applied
// an event, including events the machine ignored.
type AppliedMsg struct {
	Event journey.Event
}
