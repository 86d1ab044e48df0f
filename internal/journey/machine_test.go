package journey

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/gesture"
	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/session"
)

// parked never finishes on its own; tests feed ingestion events by hand.
var parked = ingest.IngesterFunc(func(ctx context.Context, _ ingest.Document) ([]deck.Card, error) {
	<-ctx.Done()
	return nil, ctx.Err()
})

func cards(n int) []deck.Card {
	out := make([]deck.Card, n)
	for i := range out {
		out[i] = deck.Card{ID: fmt.Sprintf("c%d", i+1), Title: fmt.Sprintf("Card %d", i+1), Kind: deck.KindConcept}
	}
	return out
}

func fire(t *testing.T, m *Machine, ev Event) Outcome {
	t.Helper()
	out, err := m.Fire(ev)
	require.NoError(t, err)
	return out
}

// toReady drives a fresh machine to PhaseReady with n cards.
func toReady(t *testing.T, n int) *Machine {
	t.Helper()
	m := New(parked)
	t.Cleanup(m.Close)
	fire(t, m, SubmitDocument{Doc: ingest.NewDocument("doc.md", "text")})
	require.Equal(t, PhaseIngesting, m.Phase())
	fire(t, m, IngestionComplete{Ticket: m.Ticket(), Cards: cards(n)})
	require.Equal(t, PhaseReady, m.Phase())
	return m
}

func TestMachine_FullJourney(t *testing.T) {
	m := toReady(t, 3)
	fire(t, m, StartReview{})
	require.Equal(t, PhaseReviewing, m.Phase())

	cl := gesture.Default()
	var last Outcome
	for _, v := range []gesture.DragVector{{DX: 150, DY: 10}, {DX: 0, DY: -150}, {DX: -150, DY: 10}} {
		c, ok := cl.OnDragEnd(v)
		require.True(t, ok)
		var err error
		last, err = m.Classify(c, ok)
		require.NoError(t, err)
	}

	assert.Equal(t, PhaseComplete, m.Phase())
	assert.Equal(t, PhaseReviewing, last.From)
	assert.Equal(t, PhaseComplete, last.To)
	require.NotNil(t, last.Record)
	assert.Same(t, m.Record(), last.Record)

	rec := m.Record()
	assert.Equal(t, 1, rec.Stats.Accepted)
	assert.Equal(t, 1, rec.Stats.Archived)
	assert.Equal(t, 1, rec.Stats.Rejected)
	require.Len(t, rec.ArchivedCards, 1)
	assert.Equal(t, "c2", rec.ArchivedCards[0].ID)
	assert.Equal(t, 1, m.Streak())

	fire(t, m, NewSession{})
	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Nil(t, m.Record())
	assert.Empty(t, m.Cards())
	assert.Equal(t, 1, m.Streak(), "streak survives a new session")
}

func TestMachine_CancelledGestureIsNoop(t *testing.T) {
	m := toReady(t, 1)
	fire(t, m, StartReview{})

	c, ok := gesture.Default().OnDragEnd(gesture.DragVector{DX: 50})
	out, err := m.Classify(c, ok)
	require.NoError(t, err)
	assert.True(t, out.Ignored)
	assert.Equal(t, 0, m.Review().Stats().Total())

	c, ok = gesture.Default().OnDragEnd(gesture.DragVector{DX: 150})
	out, err = m.Classify(c, ok)
	require.NoError(t, err)
	assert.Equal(t, PhaseComplete, out.To)
	assert.Equal(t, 1, m.Record().Stats.Accepted)
}

func TestMachine_IllegalEventsIgnored(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Machine
		ev    Event
	}{
		{"welcome start review", func(t *testing.T) *Machine { return New(parked) }, StartReview{}},
		{"welcome resolve", func(t *testing.T) *Machine { return New(parked) }, Resolve{Classification: gesture.Accept}},
		{"welcome new session", func(t *testing.T) *Machine { return New(parked) }, NewSession{}},
		{"ready submit", func(t *testing.T) *Machine { return toReady(t, 2) }, SubmitDocument{}},
		{"ready resolve", func(t *testing.T) *Machine { return toReady(t, 2) }, Resolve{Classification: gesture.Accept}},
		{"ready retry", func(t *testing.T) *Machine { return toReady(t, 2) }, RetryIngestion{}},
		{"reviewing start review", func(t *testing.T) *Machine {
			m := toReady(t, 2)
			fire(t, m, StartReview{})
			return m
		}, StartReview{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup(t)
			before := m.Phase()
			out, err := m.Fire(tt.ev)
			require.NoError(t, err)
			assert.True(t, out.Ignored)
			assert.Equal(t, before, m.Phase())
		})
	}
}

func TestMachine_LateIngestionDiscarded(t *testing.T) {
	m := New(parked)
	defer m.Close()

	fire(t, m, SubmitDocument{Doc: ingest.NewDocument("first", "x")})
	stale := m.Ticket()
	fire(t, m, CancelIngestion{})
	require.Equal(t, PhaseWelcome, m.Phase())

	// Arriving in Welcome: no row, ignored.
	out := fire(t, m, IngestionComplete{Ticket: stale, Cards: cards(2)})
	assert.True(t, out.Ignored)

	fire(t, m, SubmitDocument{Doc: ingest.NewDocument("second", "y")})
	require.NotEqual(t, stale, m.Ticket())

	// Arriving in Ingesting with an old ticket: discarded.
	out = fire(t, m, IngestionComplete{Ticket: stale, Cards: cards(2)})
	assert.True(t, out.Ignored)
	assert.Equal(t, PhaseIngesting, m.Phase())

	fire(t, m, IngestionComplete{Ticket: m.Ticket(), Cards: cards(3)})
	assert.Equal(t, PhaseReady, m.Phase())
	assert.Len(t, m.Cards(), 3)
}

func TestMachine_IngestionFailureStaysIngesting(t *testing.T) {
	m := New(parked)
	defer m.Close()
	fire(t, m, SubmitDocument{Doc: ingest.NewDocument("bad.pdf", "")})

	boom := errors.New("collaborator down")
	out, err := m.Fire(IngestionFailed{Ticket: m.Ticket(), Err: boom})
	require.Error(t, err)
	assert.False(t, out.Ignored)
	assert.Equal(t, PhaseIngesting, m.Phase())

	var f *ingest.Failure
	require.ErrorAs(t, m.Err(), &f)
	assert.Equal(t, "bad.pdf", f.Document)
	assert.ErrorIs(t, m.Err(), boom)

	// StartReview has no row from Ingesting.
	out = fire(t, m, StartReview{})
	assert.True(t, out.Ignored)

	first := m.Ticket()
	fire(t, m, RetryIngestion{})
	assert.Equal(t, first+1, m.Ticket())
	assert.NoError(t, m.Err())
	assert.NotNil(t, m.Task())

	// Retry while a task is running is discarded.
	out = fire(t, m, RetryIngestion{})
	assert.True(t, out.Ignored)

	fire(t, m, CancelIngestion{})
	assert.Equal(t, PhaseWelcome, m.Phase())
	assert.Nil(t, m.Task())
}

func TestMachine_EmptyDeckStaysIngesting(t *testing.T) {
	m := New(parked)
	defer m.Close()
	fire(t, m, SubmitDocument{Doc: ingest.NewDocument("empty", "")})

	_, err := m.Fire(IngestionComplete{Ticket: m.Ticket(), Cards: nil})
	require.Error(t, err)
	assert.ErrorIs(t, err, deck.ErrInvalidDeck)
	assert.Equal(t, PhaseIngesting, m.Phase())
	assert.ErrorIs(t, m.Err(), deck.ErrInvalidDeck)
}

func TestMachine_AbortReviewDiscardsStats(t *testing.T) {
	m := toReady(t, 3)
	fire(t, m, StartReview{})
	fire(t, m, Resolve{Classification: gesture.Accept})
	firstID := m.Review().ID()

	fire(t, m, AbortReview{})
	assert.Equal(t, PhaseReady, m.Phase())
	assert.Nil(t, m.Review())
	assert.Nil(t, m.Record())
	assert.Equal(t, 0, m.Streak())

	fire(t, m, StartReview{})
	assert.NotEqual(t, firstID, m.Review().ID())
	assert.Equal(t, 0, m.Review().Stats().Total(), "fresh review starts from zero")
	idx, total := m.Review().Position()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, total)
}

func TestMachine_InvalidClassificationAbortsToReady(t *testing.T) {
	m := toReady(t, 2)
	fire(t, m, StartReview{})

	out, err := m.Fire(Resolve{Classification: gesture.Classification(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrUnknownClassification)
	assert.Equal(t, PhaseReady, out.To)
	assert.Nil(t, m.Record())
}

func TestMachine_ForeignSessionCompleteIgnored(t *testing.T) {
	m := toReady(t, 2)
	fire(t, m, StartReview{})

	out := fire(t, m, SessionComplete{Record: &session.Record{SessionID: "other"}})
	assert.True(t, out.Ignored)
	assert.Equal(t, PhaseReviewing, m.Phase())
}

func TestMachine_WithRealTask(t *testing.T) {
	m := New(ingest.NewSample(time.Millisecond))
	defer m.Close()
	fire(t, m, SubmitDocument{Doc: ingest.NewDocument("notes.txt", "anything")})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := m.Task().Wait(ctx)
	require.NoError(t, err)

	fire(t, m, Ingested(res))
	assert.Equal(t, PhaseReady, m.Phase())
	assert.Len(t, m.Cards(), 5)
}

func TestTransitions_Table(t *testing.T) {
	seen := map[string]bool{}
	for _, tr := range Transitions {
		key := tr.From.String() + "/" + tr.Event
		assert.False(t, seen[key], "duplicate row %s", key)
		seen[key] = true
		assert.NotEmpty(t, tr.Targets, key)
		assert.NotNil(t, tr.apply, key)
	}
	assert.True(t, Accepts(PhaseComplete, "new_session"))
	assert.False(t, Accepts(PhaseComplete, "resolve"))
}
