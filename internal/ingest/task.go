package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/conceptswipe/internal/deck"
)

// Result is the outcome of a Task. Exactly one of Cards and Err is set.
type Result struct {
	Ticket uint64
	Cards  []deck.Card
	Err    error
}

// Task is one asynchronous ingestion attempt. The ticket lets the caller
// tell a current result from a stale one.
type Task struct {
	ticket uint64
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	result Result
}

// Start runs ing on doc in a new goroutine. Cancelling ctx or calling
// Cancel stops it.
func Start(ctx context.Context, ing Ingester, doc Document, ticket uint64, logger *slog.Logger) *Task {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{ticket: ticket, cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		start := time.Now()
		logger.Info("ingestion started", "ticket", ticket, "document", doc.Name, "bytes", doc.Size)
		cards, err := Run(ctx, ing, doc)

		t.mu.Lock()
		t.result = Result{Ticket: ticket, Cards: cards, Err: err}
		t.mu.Unlock()

		if err != nil {
			logger.Warn("ingestion failed", "ticket", ticket, "error", err, "elapsed", time.Since(start))
			return
		}
		logger.Info("ingestion finished", "ticket", ticket, "cards", len(cards), "elapsed", time.Since(start))
	}()
	return t
}

// Ticket returns the ticket the task was started with.
func (t *Task) Ticket() uint64 { return t.ticket }

// Done is closed once the result is available.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result returns the outcome without blocking; ok is false while running.
func (t *Task) Result() (Result, bool) {
	select {
	case <-t.done:
	default:
		return Result{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, true
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-t.done:
		r, _ := t.Result()
		return r, nil
	}
}

// Cancel asks the ingester to stop. The task still completes, with a
// cancellation failure, unless the ingester had already finished.
func (t *Task) Cancel() { t.cancel() }
