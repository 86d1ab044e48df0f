// Package app is the root Bubble Tea model. It owns the journey machine
// and shows one screen per phase.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/router"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/screens/complete"
	"github.com/abhisek/conceptswipe/internal/screens/ingesting"
	"github.com/abhisek/conceptswipe/internal/screens/ready"
	"github.com/abhisek/conceptswipe/internal/screens/review"
	"github.com/abhisek/conceptswipe/internal/screens/welcome"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
)

// Options wires the app's collaborators.
type Options struct {
	Machine    *journey.Machine
	Classifier *gesture.Classifier
	Review     review.Config

	// Open loads a document from a path typed on the welcome screen.
	Open welcome.Opener
	// Demo lets an empty path submit the built-in deck.
	Demo bool
	// IngestPace is the expected ingestion time used to pace stage labels.
	IngestPace time.Duration

	// Sharer may be nil when no clipboard is available.
	Sharer complete.Sharer
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts    Options
	machine *journey.Machine
	router  *router.Router
	waiting uint64
	width   int
	height  int
}

// New creates the model showing the screen for the machine's phase.
func New(opts Options) *AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Classifier == nil {
		opts.Classifier = gesture.Default()
	}
	if opts.Open == nil {
		opts.Open = func(path string) (ingest.Document, error) { return ingest.OpenDocument(path, 0) }
	}
	m := &AppModel{opts: opts, machine: opts.Machine}
	m.router = router.New(m.screenFor(m.machine.Phase()))
	return m
}

// Router exposes the screen stack for tests.
func (m *AppModel) Router() *router.Router { return m.router }

func (m *AppModel) Init() tea.Cmd {
	return m.router.Root().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.machine.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case screen.EventMsg:
		return m, m.fire(msg.Event)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// fire applies ev and swaps screens when the journey moved.
func (m *AppModel) fire(ev journey.Event) tea.Cmd {
	out, err := m.machine.Fire(ev)
	if out.Ignored {
		return m.router.Update(screen.AppliedMsg{Event: ev})
	}
	if err != nil {
		m.opts.Logger.Warn("journey event failed", "event", out.Event, "phase", out.To.String(), "error", err)
	}

	var cmds []tea.Cmd
	if out.From != out.To || err != nil || out.To == journey.PhaseIngesting {
		cmds = append(cmds, m.router.Reset(m.screenFor(out.To)))
	} else {
		cmds = append(cmds, m.router.Update(screen.AppliedMsg{Event: ev}))
	}
	if task := m.machine.Task(); task != nil && task.Ticket() != m.waiting {
		m.waiting = task.Ticket()
		cmds = append(cmds, waitFor(task))
	}
	return tea.Batch(cmds...)
}

// waitFor delivers the task's result back as an event.
func waitFor(task *ingest.Task) tea.Cmd {
	return func() tea.Msg {
		res, _ := task.Wait(context.Background())
		return screen.EventMsg{Event: journey.Ingested(res)}
	}
}

func (m *AppModel) screenFor(p journey.Phase) screen.Screen {
	switch p {
	case journey.PhaseIngesting:
		return ingesting.New(m.machine.Document().Name, m.opts.IngestPace, m.machine.Err())
	case journey.PhaseReady:
		return ready.New(m.machine.Cards(), m.machine.Streak(), m.machine.Err())
	case journey.PhaseReviewing:
		return review.New(m.machine.Review(), m.opts.Classifier, m.opts.Review)
	case journey.PhaseComplete:
		return complete.New(m.machine.Record(), m.machine.Streak(), m.opts.Sharer)
	default:
		return welcome.New(m.opts.Open, m.opts.Demo)
	}
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m *AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.machine.Streak(), m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	opts.Machine.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
