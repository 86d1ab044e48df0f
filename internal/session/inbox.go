package session

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/conceptswipe/internal/gesture"
)

// ErrInboxClosed is returned when submitting to a closed inbox.
var ErrInboxClosed = errors.New("inbox closed")

// Inbox serializes classifications from any number of producers into a
// single consumer that owns the Review.
type Inbox struct {
	review  *Review
	pending chan gesture.Classification

	closeOnce sync.Once
	closed    chan struct{}
}

// NewInbox creates an inbox for r with the given buffer capacity.
func NewInbox(r *Review, capacity int) *Inbox {
	if capacity < 0 {
		capacity = 0
	}
	return &Inbox{
		review:  r,
		pending: make(chan gesture.Classification, capacity),
		closed:  make(chan struct{}),
	}
}

// Submit enqueues c. It blocks while the buffer is full. A nil error
// means c was queued, not applied: anything still queued when the review
// is exhausted is discarded when Run returns.
func (in *Inbox) Submit(ctx context.Context, c gesture.Classification) error {
	select {
	case <-in.closed:
		return ErrInboxClosed
	default:
	}
	select {
	case <-in.closed:
		return ErrInboxClosed
	case <-ctx.Done():
		return ctx.Err()
	case in.pending <- c:
		return nil
	}
}

// Run consumes classifications in arrival order until the review is
// exhausted, the inbox is closed or ctx is done. It must be called from
// a single goroutine.
func (in *Inbox) Run(ctx context.Context) (*Record, error) {
	defer in.Close()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case c := <-in.pending:
			rec, err := in.apply(c)
			if err != nil || rec != nil {
				return rec, err
			}
		case <-in.closed:
			return in.drain()
		}
	}
}

func (in *Inbox) drain() (*Record, error) {
	for {
		select {
		case c := <-in.pending:
			rec, err := in.apply(c)
			if err != nil || rec != nil {
				return rec, err
			}
		default:
			return nil, ErrInboxClosed
		}
	}
}

// apply resolves c. A failed resolution aborts the review; queued
// classifications left after the final card are logged and dropped.
func (in *Inbox) apply(c gesture.Classification) (*Record, error) {
	rec, err := in.review.Resolve(c)
	if err != nil {
		in.review.Abort()
		return nil, err
	}
	if rec != nil {
		if n := len(in.pending); n > 0 {
			in.review.logger.Warn("classifications dropped after the last card", "session_id", in.review.id, "dropped", n)
		}
	}
	return rec, nil
}

// Close stops accepting new submissions. Calling it more than once is safe.
func (in *Inbox) Close() {
	in.closeOnce.Do(func() { close(in.closed) })
}
