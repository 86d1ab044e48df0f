package journey

import (
	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/session"
)

// Event is an input to the machine. The set is closed.
type Event interface {
	eventName() string
}

// SubmitDocument starts ingestion of Doc.
type SubmitDocument struct{ Doc ingest.Document }

// IngestionComplete carries the cards produced by the task with Ticket.
type IngestionComplete struct {
	Ticket uint64
	Cards  []deck.Card
}

// IngestionFailed reports that the task with Ticket failed.
type IngestionFailed struct {
	Ticket uint64
	Err    error
}

// RetryIngestion re-runs ingestion of the current document after a failure.
type RetryIngestion struct{}

// CancelIngestion abandons the current document and returns to Welcome.
type CancelIngestion struct{}

// StartReview begins a fresh review over the ingested cards.
type StartReview struct{}

// Resolve applies a classification to the current card.
type Resolve struct{ Classification gesture.Classification }

// SessionComplete moves to Complete with the record of the active review.
type SessionComplete struct{ Record *session.Record }

// AbortReview abandons the active review, discarding its stats.
type AbortReview struct{}

// NewSession resets everything but the streak and returns to Welcome.
type NewSession struct{}

func (SubmitDocument) eventName() string    { return "submit_document" }
func (IngestionComplete) eventName() string { return "ingestion_complete" }
func (IngestionFailed) eventName() string   { return "ingestion_failed" }
func (RetryIngestion) eventName() string    { return "retry_ingestion" }
func (CancelIngestion) eventName() string   { return "cancel_ingestion" }
func (StartReview) eventName() string       { return "start_review" }
func (Resolve) eventName() string           { return "resolve" }
func (SessionComplete) eventName() string   { return "session_complete" }
func (AbortReview) eventName() string       { return "abort_review" }
func (NewSession) eventName() string        { return "new_session" }

// EventName returns the stable name used in logs and the transition table.
func EventName(ev Event) string { return ev.eventName() }

// Ingested converts a task result into the matching event.
func Ingested(r ingest.Result) Event {
	if r.Err != nil {
		return IngestionFailed{Ticket: r.Ticket, Err: r.Err}
	}
	return IngestionComplete{Ticket: r.Ticket, Cards: r.Cards}
}
