package review

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/session"
	"github.com/abhisek/conceptswipe/internal/ui/components"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// FeedbackText is the flash shown after a resolution.
func FeedbackText(c gesture.Classification) string {
	switch c {
	case gesture.Accept:
		return "❤️ Concept Grasped!"
	case gesture.Reject:
		return "⏭️ Skipped for later"
	case gesture.Archive:
		return "📚 Saved as Note!"
	default:
		return ""
	}
}

func leanLabel(c gesture.Classification) string {
	switch c {
	case gesture.Accept:
		return theme.Accepted.Render("GOT IT →")
	case gesture.Reject:
		return theme.Rejected.Render("← SKIP")
	case gesture.Archive:
		return theme.Archived.Render("↑ SAVE")
	default:
		return ""
	}
}

var visualIcons = map[deck.Visual]string{
	deck.VisualChart:        "📊",
	deck.VisualDiagram:      "🧩",
	deck.VisualGraph:        "📈",
	deck.VisualIllustration: "🎨",
}

func (s *ReviewScreen) View(width, height int) string {
	idx, n := s.review.Position()
	cardWidth := max(min(width-10, 64), 20)
	center := func(str string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, str) }

	lines := []string{
		center(lipgloss.JoinHorizontal(lipgloss.Center,
			components.Counter(idx, n), "  ",
			components.NewProgressBar("", s.review.Progress(), false, min(width-20, 40)).View(),
		)),
		center(s.renderCounters()),
		"",
	}

	card, err := s.review.Current()
	switch {
	case s.hasPending:
		lines = append(lines, center(s.renderFlash(cardWidth)))
	case err != nil:
		lines = append(lines, center(theme.Hint.Render("No cards left")))
	default:
		lines = append(lines, s.offset(s.renderCard(card, cardWidth), width, cardWidth))
	}

	lines = append(lines, "", center(s.renderLean()), center(components.ButtonRow(s.buttons, -1)))
	return lipgloss.PlaceVertical(height, lipgloss.Center, strings.Join(lines, "\n"))
}

func (s *ReviewScreen) renderCounters() string {
	st := s.review.Stats()
	if s.hasPending {
		st = withPending(st, s.pending)
	}
	return theme.Accepted.Render(fmt.Sprintf("❤ %d", st.Accepted)) + "   " +
		theme.Archived.Render(fmt.Sprintf("📚 %d", st.Archived)) + "   " +
		theme.Rejected.Render(fmt.Sprintf("⏭ %d", st.Rejected))
}

func withPending(st session.Stats, c gesture.Classification) session.Stats {
	switch c {
	case gesture.Accept:
		st.Accepted++
	case gesture.Reject:
		st.Rejected++
	case gesture.Archive:
		st.Archived++
	}
	return st
}

func (s *ReviewScreen) renderCard(c deck.Card, width int) string {
	header := theme.Badge.Render(string(c.Kind))
	if c.Difficulty != "" {
		header += " " + theme.Hint.Render(string(c.Difficulty))
	}
	if icon, ok := visualIcons[c.Visual]; ok {
		header += " " + icon
	}

	var tags []string
	for _, t := range c.Tags {
		tags = append(tags, "#"+t)
	}

	body := header + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Title) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(width-6).Render(c.Body)
	if len(tags) > 0 {
		body += "\n\n" + theme.Tag.Render(strings.Join(tags, " "))
	}

	style := theme.Card.Width(width)
	if s.capture != nil && s.hint.Armed {
		style = style.BorderForeground(leanColor(s.hint.Leaning))
	}
	return style.Render(body)
}

func leanColor(c gesture.Classification) color.Color {
	switch c {
	case gesture.Accept:
		return theme.AcceptColor
	case gesture.Reject:
		return theme.RejectColor
	default:
		return theme.ArchiveColor
	}
}

// offset shifts the card by the drag's horizontal displacement.
func (s *ReviewScreen) offset(card string, width, cardWidth int) string {
	base := (width - cardWidth) / 2
	shift := 0
	if s.capture != nil {
		shift = int(s.hint.Offset.DX / s.cfg.ColumnUnits)
	}
	left := max(0, min(base+shift, width-cardWidth))
	return lipgloss.NewStyle().PaddingLeft(left).Render(card)
}

func (s *ReviewScreen) renderLean() string {
	if s.capture == nil {
		return theme.Hint.Render("drag the card or use the arrow keys")
	}
	tilt := theme.Hint.Render(fmt.Sprintf("tilt %+.1f°", s.hint.Rotation))
	if !s.hint.Armed {
		return tilt
	}
	return leanLabel(s.hint.Leaning) + "  " + tilt
}

func (s *ReviewScreen) renderFlash(width int) string {
	return theme.Card.Width(width).Align(lipgloss.Center).Render(
		"\n" + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(FeedbackText(s.pending)) + "\n",
	)
}
