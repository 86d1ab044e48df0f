package journey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/session"
)

// errDiscard marks an event that matched a row but was stale.
var errDiscard = errors.New("stale event")

// Outcome describes the effect of one Fire call.
type Outcome struct {
	From    Phase
	To      Phase
	Event   string
	Ignored bool

	// Record is set when the event completed a review.
	Record *session.Record
}

// ReviewView is the read-only face of the active review.
type ReviewView interface {
	ID() string
	Current() (deck.Card, error)
	Position() (int, int)
	Progress() float64
	Stats() session.Stats
	Archived() []deck.Card
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithContext sets the parent context of ingestion tasks.
func WithContext(ctx context.Context) Option {
	return func(m *Machine) { m.ctx = ctx }
}

// WithReviewOptions passes options to every review the machine creates.
func WithReviewOptions(opts ...session.ReviewOption) Option {
	return func(m *Machine) { m.reviewOpts = append(m.reviewOpts, opts...) }
}

// Machine is the application state machine. It is driven from a single
// goroutine; ingestion runs on its own goroutine and reports back through
// IngestionComplete / IngestionFailed events.
type Machine struct {
	ingester   ingest.Ingester
	ctx        context.Context
	logger     *slog.Logger
	reviewOpts []session.ReviewOption

	phase Phase

	doc    ingest.Document
	ticket uint64
	task   *ingest.Task
	err    error

	cards  []deck.Card
	review *session.Review
	record *session.Record

	// streak counts sessions completed during this process.
	streak int
}

// New creates a machine in PhaseWelcome.
func New(ing ingest.Ingester, opts ...Option) *Machine {
	m := &Machine{ingester: ing, ctx: context.Background(), phase: PhaseWelcome}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	return m
}

// Fire applies ev. Events without a transition from the current phase,
// and stale ingestion results, are ignored. A non-nil error is a problem
// to surface to the user; the machine is always left in a valid phase.
func (m *Machine) Fire(ev Event) (Outcome, error) {
	name := ev.eventName()
	out := Outcome{From: m.phase, To: m.phase, Event: name}

	t, ok := lookup(m.phase, name)
	if !ok {
		out.Ignored = true
		m.logger.Debug("event ignored", "phase", m.phase.String(), "event", name)
		return out, nil
	}

	next, err := t.apply(m, ev)
	if errors.Is(err, errDiscard) {
		out.Ignored = true
		m.logger.Debug("stale event discarded", "phase", m.phase.String(), "event", name)
		return out, nil
	}
	if !containsPhase(t.Targets, next) {
		return out, fmt.Errorf("transition %s --%s--> %s not in table", m.phase, name, next)
	}

	prev := m.phase
	m.phase = next
	out.To = next
	if next == PhaseComplete && prev != PhaseComplete {
		out.Record = m.record
	}
	if prev != next {
		m.logger.Info("phase changed", "from", prev.String(), "to", next.String(), "event", name)
	}
	return out, err
}

func containsPhase(ps []Phase, p Phase) bool {
	for _, x := range ps {
		if x == p {
			return true
		}
	}
	return false
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Document returns the submitted document.
func (m *Machine) Document() ingest.Document { return m.doc }

// Ticket identifies the current ingestion attempt.
func (m *Machine) Ticket() uint64 { return m.ticket }

// Task returns the in-flight ingestion task, or nil.
func (m *Machine) Task() *ingest.Task { return m.task }

// Err returns the error currently flagged for display, if any.
func (m *Machine) Err() error { return m.err }

// Cards returns a copy of the ingested cards.
func (m *Machine) Cards() []deck.Card {
	out := make([]deck.Card, len(m.cards))
	copy(out, m.cards)
	return out
}

// Review returns the active review, or nil outside PhaseReviewing.
func (m *Machine) Review() ReviewView {
	if m.review == nil {
		return nil
	}
	return m.review
}

// Record returns the record of the last completed session while in
// PhaseComplete.
func (m *Machine) Record() *session.Record { return m.record }

// Streak is the number of sessions completed in this process.
func (m *Machine) Streak() int { return m.streak }

// Close cancels any in-flight ingestion.
func (m *Machine) Close() {
	if m.task != nil {
		m.task.Cancel()
		m.task = nil
	}
}

func (m *Machine) startTask() {
	m.ticket++
	m.err = nil
	m.task = ingest.Start(m.ctx, m.ingester, m.doc, m.ticket, m.logger)
}

func (m *Machine) onSubmit(ev Event) (Phase, error) {
	m.doc = ev.(SubmitDocument).Doc
	m.startTask()
	return PhaseIngesting, nil
}

func (m *Machine) onIngested(ev Event) (Phase, error) {
	e := ev.(IngestionComplete)
	if e.Ticket != m.ticket || m.task == nil {
		return m.phase, errDiscard
	}
	m.task.Cancel()
	m.task = nil

	d, err := deck.New(e.Cards)
	if err != nil {
		m.err = &ingest.Failure{Document: m.doc.Name, Err: err}
		return PhaseIngesting, m.err
	}
	m.cards = d.Cards()
	m.err = nil
	return PhaseReady, nil
}

func (m *Machine) onIngestFailed(ev Event) (Phase, error) {
	e := ev.(IngestionFailed)
	if e.Ticket != m.ticket || m.task == nil {
		return m.phase, errDiscard
	}
	m.task.Cancel()
	m.task = nil

	var f *ingest.Failure
	if errors.As(e.Err, &f) {
		m.err = e.Err
	} else {
		m.err = &ingest.Failure{Document: m.doc.Name, Err: e.Err}
	}
	return PhaseIngesting, m.err
}

func (m *Machine) onRetry(Event) (Phase, error) {
	if m.err == nil || m.task != nil {
		return m.phase, errDiscard
	}
	m.startTask()
	return PhaseIngesting, nil
}

func (m *Machine) onCancelIngest(Event) (Phase, error) {
	m.Close()
	m.doc = ingest.Document{}
	m.err = nil
	m.cards = nil
	return PhaseWelcome, nil
}

func (m *Machine) onStartReview(Event) (Phase, error) {
	d, err := deck.New(m.cards)
	if err != nil {
		m.err = err
		return PhaseReady, err
	}
	r, err := session.NewReview(d, append([]session.ReviewOption{session.WithLogger(m.logger)}, m.reviewOpts...)...)
	if err != nil {
		m.err = err
		return PhaseReady, err
	}
	m.review = r
	m.record = nil
	m.err = nil
	return PhaseReviewing, nil
}

func (m *Machine) onResolve(ev Event) (Phase, error) {
	c := ev.(Resolve).Classification
	rec, err := m.review.Resolve(c)
	if err != nil {
		m.review.Abort()
		m.review = nil
		m.err = fmt.Errorf("review aborted: %w", err)
		return PhaseReady, m.err
	}
	if rec == nil {
		return PhaseReviewing, nil
	}
	return m.onSessionComplete(SessionComplete{Record: rec})
}

func (m *Machine) onSessionComplete(ev Event) (Phase, error) {
	rec := ev.(SessionComplete).Record
	if rec == nil || m.review == nil || m.review.Record() != rec {
		return m.phase, errDiscard
	}
	m.record = rec
	m.review = nil
	m.streak++
	return PhaseComplete, nil
}

func (m *Machine) onAbort(Event) (Phase, error) {
	m.review.Abort()
	m.review = nil
	return PhaseReady, nil
}

func (m *Machine) onNewSession(Event) (Phase, error) {
	m.Close()
	m.doc = ingest.Document{}
	m.err = nil
	m.cards = nil
	m.review = nil
	m.record = nil
	return PhaseWelcome, nil
}

// Classify is a convenience that resolves a finished drag: cancelled
// gestures never reach the machine.
func (m *Machine) Classify(c gesture.Classification, ok bool) (Outcome, error) {
	if !ok {
		return Outcome{From: m.phase, To: m.phase, Event: "resolve", Ignored: true}, nil
	}
	return m.Fire(Resolve{Classification: c})
}
