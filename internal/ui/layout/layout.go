// Package layout composes the header, screen content and footer into a
// full terminal frame.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// Smallest terminal the review card fits in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one entry of the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nConceptSwipe needs %d x %d,\nthis one is %d x %d.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// RenderHeader renders the app name, the screen title and the number of
// sessions completed since launch on a single line with a rule below.
func RenderHeader(title string, streak int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ConceptSwipe")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d", streak)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" streak  ")

	// Center the title on the full width when there is room.
	used := lipgloss.Width(brand) + lipgloss.Width(center) + lipgloss.Width(right)
	gapL := max(1, (width-lipgloss.Width(center))/2-lipgloss.Width(brand))
	gapR := max(1, width-used-gapL)
	line := brand + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width)))
	return line + "\n" + rule
}

// RenderFooter renders key hints separated by wide gaps.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return theme.Footer.Width(width).Render(strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer; content gets whatever
// height the other two leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
