// Package review is the swipe screen: one card at a time, resolved by a
// mouse drag or an arrow key.
package review

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/ui/components"
	"github.com/abhisek/conceptswipe/internal/ui/layout"
	"github.com/abhisek/conceptswipe/internal/ui/theme"
)

// Config controls input scaling and feedback.
type Config struct {
	// ColumnUnits and RowUnits convert terminal cells to gesture units.
	ColumnUnits float64
	RowUnits    float64

	// FeedbackDuration is how long a resolution is flashed before it is
	// applied. Zero applies it immediately.
	FeedbackDuration time.Duration
}

// DefaultConfig returns the stock scaling: the 100-unit thresholds need
// nine columns sideways or five rows up, since equal to the threshold
// cancels.
func DefaultConfig() Config {
	return Config{ColumnUnits: 12, RowUnits: 25, FeedbackDuration: 800 * time.Millisecond}
}

// flashDoneMsg ends the feedback flash with the given sequence number.
type flashDoneMsg struct{ seq int }

// ReviewScreen drives one review session.
type ReviewScreen struct {
	review journey.ReviewView
	cfg    Config

	pad     *gesture.Pad
	capture *gesture.Capture
	hint    gesture.Hint

	buttons []components.Button

	pending    gesture.Classification
	hasPending bool
	flashSeq   int

	// awaiting is set from the moment a Resolve is fired until the app
	// reports it applied; no other gesture is accepted meanwhile.
	awaiting bool
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates the screen for an active review.
func New(review journey.ReviewView, cl *gesture.Classifier, cfg Config) *ReviewScreen {
	if cfg.ColumnUnits <= 0 {
		cfg.ColumnUnits = DefaultConfig().ColumnUnits
	}
	if cfg.RowUnits <= 0 {
		cfg.RowUnits = DefaultConfig().RowUnits
	}
	s := &ReviewScreen{review: review, cfg: cfg, pad: gesture.NewPad(cl)}
	s.buttons = []components.Button{
		s.button("← Skip", "left", gesture.Reject, theme.Rejected),
		s.button("↑ Save", "up", gesture.Archive, theme.Archived),
		s.button("Got it →", "right", gesture.Accept, theme.Accepted),
	}
	return s
}

func (s *ReviewScreen) button(label, key string, c gesture.Classification, style lipgloss.Style) components.Button {
	b := components.NewButton(label, key, func() tea.Cmd { return s.tap(c) })
	b.Color = style
	return b
}

func (s *ReviewScreen) Title() string { return "Review" }

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Drag", Description: "Swipe"},
		{Key: "←/h", Description: "Skip"},
		{Key: "↑/k", Description: "Save"},
		{Key: "→/l", Description: "Got it"},
		{Key: "Esc", Description: "End review"},
	}
}

func (s *ReviewScreen) Init() tea.Cmd { return nil }

// Dragging reports whether a pointer capture is live.
func (s *ReviewScreen) Dragging() bool { return s.capture != nil }

// Pending returns the classification being flashed, if any.
func (s *ReviewScreen) Pending() (gesture.Classification, bool) {
	return s.pending, s.hasPending
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flashDoneMsg:
		if !s.hasPending || msg.seq != s.flashSeq {
			return s, nil
		}
		s.hasPending = false
		return s, s.fire(s.pending)

	case screen.AppliedMsg:
		if _, ok := msg.Event.(journey.Resolve); ok {
			s.awaiting = false
		}
		return s, nil

	case tea.BlurMsg:
		s.cancelCapture()
		return s, nil

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || s.busy() {
			return s, nil
		}
		x, y := s.units(msg.X, msg.Y)
		c, err := s.pad.Begin(x, y)
		if err != nil {
			return s, nil
		}
		s.capture = c
		s.hint = gesture.Hint{}
		return s, nil

	case tea.MouseMotionMsg:
		if s.capture == nil {
			return s, nil
		}
		s.hint = s.capture.Move(s.units(msg.X, msg.Y))
		return s, nil

	case tea.MouseReleaseMsg:
		if s.capture == nil {
			return s, nil
		}
		c, ok := s.capture.End(s.units(msg.X, msg.Y))
		s.capture = nil
		s.hint = gesture.Hint{}
		if !ok {
			return s, nil
		}
		return s, s.resolve(c)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *ReviewScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "esc" {
		if s.capture != nil {
			s.cancelCapture()
			return nil
		}
		s.hasPending = false
		return screen.Fire(journey.AbortReview{})
	}
	if s.busy() || s.capture != nil {
		return nil
	}

	switch key {
	case "h":
		return s.tap(gesture.Reject)
	case "l":
		return s.tap(gesture.Accept)
	case "k":
		return s.tap(gesture.Archive)
	}
	for i := range s.buttons {
		var cmd tea.Cmd
		s.buttons[i], cmd = s.buttons[i].Update(msg)
		if cmd != nil {
			return cmd
		}
	}
	return nil
}

func (s *ReviewScreen) tap(c gesture.Classification) tea.Cmd {
	c, ok := gesture.Tap(c)
	if !ok {
		return nil
	}
	return s.resolve(c)
}

// resolve flashes c and applies it when the flash ends.
func (s *ReviewScreen) resolve(c gesture.Classification) tea.Cmd {
	if s.cfg.FeedbackDuration <= 0 {
		return s.fire(c)
	}
	s.pending = c
	s.hasPending = true
	s.flashSeq++
	seq := s.flashSeq
	return tea.Tick(s.cfg.FeedbackDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

// fire emits the Resolve for c and holds input until it is applied.
func (s *ReviewScreen) fire(c gesture.Classification) tea.Cmd {
	s.awaiting = true
	return screen.Fire(journey.Resolve{Classification: c})
}

// busy reports whether a resolution is flashing or not yet applied.
func (s *ReviewScreen) busy() bool { return s.hasPending || s.awaiting }

func (s *ReviewScreen) cancelCapture() {
	if s.capture != nil {
		s.capture.Cancel()
		s.capture = nil
	}
	s.pad.Cancel()
	s.hint = gesture.Hint{}
}

func (s *ReviewScreen) units(x, y int) (float64, float64) {
	return float64(x) * s.cfg.ColumnUnits, float64(y) * s.cfg.RowUnits
}
