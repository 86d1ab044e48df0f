package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar for a fraction in [0, 1].
type ProgressBar struct {
	Label       string
	Fraction    float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Fraction:    fraction,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	frac := p.Fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * frac)
	empty := barWidth - filled

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(frac*100)))
	}

	return result
}

// Counter renders "i of n".
func Counter(i, n int) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d of %d", i, n))
}
