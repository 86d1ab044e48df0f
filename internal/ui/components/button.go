package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// Button is a styled action button with an optional key shortcut.
type Button struct {
	Label   string
	Key     string
	Color   lipgloss.Style
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		Color:   theme.Body,
		Active:  true,
		OnPress: onPress,
	}
}

// Update presses the button on its shortcut key.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && b.Key != "" && kmsg.String() == b.Key {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button; focused buttons are highlighted.
func (b Button) View(focused bool) string {
	label := b.Label
	if b.Key != "" {
		label += " " + theme.Hint.Render("["+b.Key+"]")
	}
	switch {
	case !b.Active:
		return theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
	case focused:
		return theme.ButtonActive.Render("▸ " + label)
	default:
		return theme.ButtonInactive.Render(b.Color.Render(label))
	}
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons []Button, focus int) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View(i == focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
