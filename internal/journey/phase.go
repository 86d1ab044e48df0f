// Package journey sequences the user journey: Welcome -> Ingesting ->
// Ready -> Reviewing -> Complete -> Welcome. All state changes go through
// Machine.Fire and the transition table below.
package journey

import "fmt"

// Phase is the top-level application state.
type Phase int

const (
	PhaseWelcome   Phase = iota // Waiting for a document
	PhaseIngesting              // Document being converted, or conversion failed
	PhaseReady                  // Deck ready, review not started
	PhaseReviewing              // Cards being triaged
	PhaseComplete               // Summary of the finished session
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseIngesting:
		return "ingesting"
	case PhaseReady:
		return "ready"
	case PhaseReviewing:
		return "reviewing"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
