// Package theme holds the colors and shared lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Base palette.
var (
	Primary   = lipgloss.Color("#A855F7") // purple
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#EC4899") // pink
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F4F4F5")
	TextDim   = lipgloss.Color("#A1A1AA")
	Ink       = lipgloss.Color("#18181B")
	BgCard    = lipgloss.Color("#27272A")
	Border    = lipgloss.Color("#3F3F46")
)

// Swipe outcome colors: right, left, up.
var (
	AcceptColor  = lipgloss.Color("#22C55E")
	RejectColor  = Error
	ArchiveColor = lipgloss.Color("#3B82F6")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Ok and Problem color status lines.
	Ok      = lipgloss.NewStyle().Foreground(AcceptColor).Bold(true)
	Problem = lipgloss.NewStyle().Foreground(Error).Bold(true)

	Selected   = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	Accepted = lipgloss.NewStyle().Foreground(AcceptColor).Bold(true)
	Rejected = lipgloss.NewStyle().Foreground(RejectColor).Bold(true)
	Archived = lipgloss.NewStyle().Foreground(ArchiveColor).Bold(true)

	Tag   = lipgloss.NewStyle().Foreground(Secondary)
	Badge = lipgloss.NewStyle().Foreground(Ink).Background(Accent).Padding(0, 1)
)

// Card is the concept card frame.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// Footer frames the key hint bar.
var Footer = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
