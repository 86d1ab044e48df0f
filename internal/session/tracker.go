package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/conceptswipe/internal/gesture"
)

var (
	ErrAlreadyStarted        = errors.New("session already started")
	ErrNotStarted            = errors.New("session not started")
	ErrAlreadyFinished       = errors.New("session already finished")
	ErrUnknownClassification = errors.New("unknown classification")
)

// Tracker accumulates per-classification counts and elapsed time for one
// review session. It moves through idle -> running -> finished exactly once.
type Tracker struct {
	clock Clock

	started  bool
	finished bool
	start    time.Time
	stats    Stats
}

// NewTracker creates an idle tracker. A nil clock means SystemClock.
func NewTracker(clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{clock: clock}
}

// Start records the start time.
func (t *Tracker) Start() error {
	if t.started {
		return ErrAlreadyStarted
	}
	t.started = true
	t.start = t.clock.Now()
	return nil
}

// Record increments the counter for c.
func (t *Tracker) Record(c gesture.Classification) error {
	switch {
	case !t.started:
		return ErrNotStarted
	case t.finished:
		return ErrAlreadyFinished
	}
	switch c {
	case gesture.Accept:
		t.stats.Accepted++
	case gesture.Reject:
		t.stats.Rejected++
	case gesture.Archive:
		t.stats.Archived++
	default:
		return fmt.Errorf("%w: %v", ErrUnknownClassification, c)
	}
	return nil
}

// Finish freezes the elapsed time, rounded to whole seconds, and returns
// the final stats by value.
func (t *Tracker) Finish() (Stats, error) {
	switch {
	case !t.started:
		return Stats{}, ErrNotStarted
	case t.finished:
		return Stats{}, ErrAlreadyFinished
	}
	t.finished = true
	t.stats.ElapsedSeconds = roundSeconds(t.clock.Now().Sub(t.start))
	return t.stats, nil
}

// Running reports whether the tracker has started and not yet finished.
func (t *Tracker) Running() bool { return t.started && !t.finished }

// Snapshot returns the current counts. While running, ElapsedSeconds is
// computed from the clock; after Finish it is the frozen value.
func (t *Tracker) Snapshot() Stats {
	s := t.stats
	if t.Running() {
		s.ElapsedSeconds = roundSeconds(t.clock.Now().Sub(t.start))
	}
	return s
}

func roundSeconds(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(math.Round(d.Seconds()))
}
