// Package ingesting shows document processing progress and ingestion
// failures.
package ingesting

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/ui/components"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

// maxRunningProgress caps the bar while the ingester has not reported.
const maxRunningProgress = 0.95

type tickMsg time.Time

// IngestingScreen renders one ingestion attempt. The app builds a new
// screen for every attempt and for every failure.
type IngestingScreen struct {
	docName string
	total   time.Duration
	err     error

	elapsed time.Duration
	spinner spinner.Model
	menu    components.Menu
}

var _ screen.Screen = (*IngestingScreen)(nil)
var _ screen.KeyHintProvider = (*IngestingScreen)(nil)

// New creates the screen. total is the expected processing time used to
// pace the stage labels; err selects the failure variant.
func New(docName string, total time.Duration, err error) *IngestingScreen {
	s := &IngestingScreen{
		docName: docName,
		total:   total,
		err:     err,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	if err != nil {
		s.menu = components.NewMenu([]components.MenuItem{
			{Label: "Try again", Action: func() tea.Cmd { return screen.Fire(journey.RetryIngestion{}) }},
			{Label: "Choose another document", Action: func() tea.Cmd { return screen.Fire(journey.CancelIngestion{}) }},
		})
	}
	return s
}

func (s *IngestingScreen) Title() string {
	if s.err != nil {
		return "Transformation failed"
	}
	return "Transforming"
}

func (s *IngestingScreen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IngestingScreen) Init() tea.Cmd {
	if s.err != nil {
		return nil
	}
	return tea.Batch(s.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *IngestingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.err != nil {
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, screen.Fire(journey.CancelIngestion{})
		}
		if s.err != nil {
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// Progress returns the active stage index and bar fraction.
func (s *IngestingScreen) Progress() (int, float64) {
	idx, frac := ingest.StageAt(s.elapsed, s.total)
	if frac > maxRunningProgress {
		frac = maxRunningProgress
	}
	return idx, frac
}

func (s *IngestingScreen) View(width, height int) string {
	if s.err != nil {
		return s.viewError(width, height)
	}

	idx, frac := s.Progress()
	barWidth := min(width-8, 50)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Transforming Your Document"))
	b.WriteString("\n\n")
	b.WriteString(s.spinner.View() + " " + theme.Body.Render(ingest.Stages[idx].Label))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Creating bite-sized brilliance from %q", s.docName)))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("", frac, true, barWidth).View())
	b.WriteString("\n\n")
	for i, st := range ingest.Stages {
		switch {
		case i < idx:
			b.WriteString(theme.Ok.Render("✓ ") + theme.Body.Render(st.Label))
		case i == idx:
			b.WriteString(theme.Selected.Render("▸ " + st.Label))
		default:
			b.WriteString(theme.Hint.Render("  " + st.Label))
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *IngestingScreen) viewError(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Problem.Render("Could not transform " + s.docName))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-8, 60)).Render(s.err.Error()))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
