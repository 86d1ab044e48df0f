package journey

import "slices"

// Transition is one row of the transition table. Targets lists every
// phase the handler may land in.
type Transition struct {
	From    Phase
	Event   string
	Targets []Phase
	apply   func(m *Machine, ev Event) (Phase, error)
}

// Transitions is the complete transition table. An event with no row for
// the current phase is ignored.
var Transitions = []Transition{
	{PhaseWelcome, "submit_document", []Phase{PhaseIngesting}, (*Machine).onSubmit},
	{PhaseIngesting, "ingestion_complete", []Phase{PhaseReady, PhaseIngesting}, (*Machine).onIngested},
	{PhaseIngesting, "ingestion_failed", []Phase{PhaseIngesting}, (*Machine).onIngestFailed},
	{PhaseIngesting, "retry_ingestion", []Phase{PhaseIngesting}, (*Machine).onRetry},
	{PhaseIngesting, "cancel_ingestion", []Phase{PhaseWelcome}, (*Machine).onCancelIngest},
	{PhaseReady, "start_review", []Phase{PhaseReviewing, PhaseReady}, (*Machine).onStartReview},
	{PhaseReviewing, "resolve", []Phase{PhaseReviewing, PhaseComplete, PhaseReady}, (*Machine).onResolve},
	{PhaseReviewing, "session_complete", []Phase{PhaseComplete}, (*Machine).onSessionComplete},
	{PhaseReviewing, "abort_review", []Phase{PhaseReady}, (*Machine).onAbort},
	{PhaseComplete, "new_session", []Phase{PhaseWelcome}, (*Machine).onNewSession},
}

func lookup(from Phase, event string) (Transition, bool) {
	i := slices.IndexFunc(Transitions, func(t Transition) bool {
		return t.From == from && t.Event == event
	})
	if i < 0 {
		return Transition{}, false
	}
	return Transitions[i], true
}

// Accepts reports whether event has a row for phase.
func Accepts(phase Phase, event string) bool {
	_, ok := lookup(phase, event)
	return ok
}
