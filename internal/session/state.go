package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/gesture"
)

// ErrSessionClosed is returned when a classification reaches a review that
// is no longer active.
var ErrSessionClosed = errors.New("review session is not active")

// State is the lifecycle state of a review.
type State int

const (
	StateActive    State = iota // Cards remain to be resolved
	StateExhausted              // Every card resolved, record produced
	StateAborted                // Abandoned; stats discarded
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExhausted:
		return "exhausted"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ReviewOption customizes a Review.
type ReviewOption func(*Review)

// WithClock sets the time source used for elapsed time.
func WithClock(c Clock) ReviewOption {
	return func(r *Review) { r.clock = c }
}

// WithID overrides the generated session ID.
func WithID(id string) ReviewOption {
	return func(r *Review) { r.id = id }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ReviewOption {
	return func(r *Review) { r.logger = l }
}

// Review walks a deck card by card, feeding each classification to a
// Tracker and producing a Record once the deck is exhausted.
type Review struct {
	// id identifies the session in records and logs.
	id string

	// deck is owned exclusively by this review.
	deck *deck.Deck

	// tracker counts classifications for this review only.
	tracker *Tracker

	clock  Clock
	logger *slog.Logger

	state State

	// archived holds cards classified as archive, in resolution order.
	archived []deck.Card

	// record is set exactly once, on exhaustion.
	record *Record
}

// NewReview starts a review over d. The deck must be fresh.
func NewReview(d *deck.Deck, opts ...ReviewOption) (*Review, error) {
	if d == nil || d.Len() == 0 || d.Exhausted() {
		return nil, fmt.Errorf("%w: review needs an unexhausted deck", deck.ErrInvalidDeck)
	}
	r := &Review{deck: d, state: StateActive}
	for _, opt := range opts {
		opt(r)
	}
	if r.id == "" {
		r.id = uuid.New().String()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	r.tracker = NewTracker(r.clock)
	if err := r.tracker.Start(); err != nil {
		return nil, err
	}
	r.logger.Debug("review started", "session_id", r.id, "cards", d.Len())
	return r, nil
}

// ID returns the session identifier.
func (r *Review) ID() string { return r.id }

// State returns the lifecycle state.
func (r *Review) State() State { return r.state }

// Current returns the card awaiting classification.
func (r *Review) Current() (deck.Card, error) {
	if r.state != StateActive {
		return deck.Card{}, ErrSessionClosed
	}
	return r.deck.Current()
}

// Progress is the deck progress fraction for display.
func (r *Review) Progress() float64 { return r.deck.ProgressFraction() }

// Position returns the 1-based index of the current card and the deck size.
func (r *Review) Position() (int, int) {
	idx := r.deck.Cursor() + 1
	if idx > r.deck.Len() {
		idx = r.deck.Len()
	}
	return idx, r.deck.Len()
}

// Stats returns a live snapshot of the counters.
func (r *Review) Stats() Stats { return r.tracker.Snapshot() }

// Archived returns the cards archived so far.
func (r *Review) Archived() []deck.Card {
	out := make([]deck.Card, len(r.archived))
	copy(out, r.archived)
	return out
}

// Record returns the completion record, or nil before exhaustion.
func (r *Review) Record() *Record { return r.record }

// Resolve applies a classification to the current card and advances.
// It returns the Record when this resolution exhausts the deck, nil
// otherwise.
func (r *Review) Resolve(c gesture.Classification) (*Record, error) {
	if r.state != StateActive {
		return nil, ErrSessionClosed
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownClassification, c)
	}

	card, err := r.deck.Current()
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	if err := r.tracker.Record(c); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	if c == gesture.Archive {
		r.archived = append(r.archived, card)
	}
	if err := r.deck.Advance(); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	r.logger.Debug("card resolved", "session_id", r.id, "card_id", card.ID, "classification", c.String())

	if !r.deck.Exhausted() {
		return nil, nil
	}
	return r.finish()
}

func (r *Review) finish() (*Record, error) {
	stats, err := r.tracker.Finish()
	if err != nil {
		return nil, fmt.Errorf("finish review: %w", err)
	}
	r.state = StateExhausted
	r.record = &Record{
		SessionID:     r.id,
		Stats:         stats,
		TotalCards:    r.deck.Len(),
		ArchivedCards: r.Archived(),
		CompletedAt:   r.tracker.clock.Now(),
	}
	r.logger.Info("review complete",
		"session_id", r.id,
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
		"archived", stats.Archived,
		"elapsed_s", stats.ElapsedSeconds,
	)
	return r.record, nil
}

// Abort abandons an active review. Its stats are discarded and no record
// is produced. Aborting a non-active review is a no-op.
func (r *Review) Abort() {
	if r.state != StateActive {
		return
	}
	r.state = StateAborted
	r.archived = nil
	r.tracker = NewTracker(r.clock)
	r.logger.Info("review aborted", "session_id", r.id)
}
