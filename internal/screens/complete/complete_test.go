package complete

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/router"
	"github.com/abhisek/conceptswipe/internal/screen"
	"github.com/abhisek/conceptswipe/internal/screens/notes"
	"github.com/abhisek/conceptswipe/internal/session"
)

type stubSharer struct {
	err   error
	calls int
}

func (s *stubSharer) Share(rec *session.Record) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "shared " + rec.SessionID, nil
}

func testRecord() *session.Record {
	cards := ingest.SampleCards()
	return &session.Record{
		SessionID:     "s-1",
		Stats:         session.Stats{Accepted: 3, Rejected: 1, Archived: 1, ElapsedSeconds: 75},
		TotalCards:    5,
		ArchivedCards: cards[1:2],
		CompletedAt:   time.Now(),
	}
}

func finishAnimation(s *CompleteScreen) {
	for i := 0; i < animSteps+2; i++ {
		s.Update(animMsg{})
	}
}

func TestViewShowsStats(t *testing.T) {
	s := New(testRecord(), 4, &stubSharer{})
	finishAnimation(s)

	view := s.View(100, 40)
	for _, want := range []string{
		"60% mastery rate",
		"Great job! You're building solid knowledge!",
		"1:15",
		"Retention: High",
		"Streak: 4",
		"4 cards/min",
		"Saved notes (1)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAnimationStops(t *testing.T) {
	s := New(testRecord(), 1, nil)
	if s.Init() == nil {
		t.Fatal("expected the count-up to start")
	}
	var cmd tea.Cmd
	for i := 0; i < animSteps; i++ {
		_, cmd = s.Update(animMsg{})
	}
	if cmd != nil {
		t.Error("animation should stop after the last step")
	}
	if s.animated(60) != 60 {
		t.Errorf("animated(60) = %d at the end", s.animated(60))
	}
}

func TestNewSession(t *testing.T) {
	s := New(testRecord(), 1, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(screen.EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", cmd())
	}
	if _, ok := msg.Event.(journey.NewSession); !ok {
		t.Errorf("expected NewSession, got %T", msg.Event)
	}
}

func TestShare(t *testing.T) {
	sharer := &stubSharer{}
	s := New(testRecord(), 1, sharer)

	_, cmd := s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if cmd == nil {
		t.Fatal("expected share command")
	}
	s.Update(cmd())
	if sharer.calls != 1 {
		t.Errorf("share calls = %d", sharer.calls)
	}
	if !strings.Contains(s.View(100, 40), "shared s-1") {
		t.Error("expected shared text in status")
	}

	failing := New(testRecord(), 1, &stubSharer{err: errors.New("clipboard unavailable")})
	_, cmd = failing.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	failing.Update(cmd())
	if !strings.Contains(failing.View(100, 40), "clipboard unavailable") {
		t.Error("expected share error in status")
	}
}

func TestShareDisabledWithoutSharer(t *testing.T) {
	s := New(testRecord(), 1, nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: '2', Text: "2"}); cmd != nil {
		t.Error("share should be disabled without a sharer")
	}
}

func TestOpenNotes(t *testing.T) {
	s := New(testRecord(), 1, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*notes.NotesScreen); !ok {
		t.Errorf("expected notes screen, got %T", push.Screen)
	}
}

func TestNotesDisabledWithoutArchive(t *testing.T) {
	rec := testRecord()
	rec.ArchivedCards = nil
	s := New(rec, 1, nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: '3', Text: "3"}); cmd != nil {
		t.Error("notes should be disabled without archived cards")
	}
}
