package ingesting

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptswipe/internal/ingest"
	"github.com/abhisek/conceptswipe/internal/journey"
	"github.com/abhisek/conceptswipe/internal/screen"
)

func eventOf(t *testing.T, cmd tea.Cmd) journey.Event {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", cmd())
	}
	return msg.Event
}

func TestStagesAdvanceWithTicks(t *testing.T) {
	s := New("notes.md", ingest.StagesDuration(), nil)

	idx, frac := s.Progress()
	if idx != 0 || frac != 0 {
		t.Fatalf("initial progress = %d, %v", idx, frac)
	}

	// 1.2s lands in the second stage (1.0s - 2.5s).
	for i := 0; i < 12; i++ {
		s.Update(tickMsg(time.Now()))
	}
	if idx, _ := s.Progress(); idx != 1 {
		t.Errorf("stage after 1.2s = %d, want 1", idx)
	}
	if !strings.Contains(s.View(80, 24), "Extracting key concepts...") {
		t.Error("expected the active stage label in the view")
	}
}

func TestProgressCappedWhileRunning(t *testing.T) {
	s := New("notes.md", time.Second, nil)
	for i := 0; i < 50; i++ {
		s.Update(tickMsg(time.Now()))
	}
	idx, frac := s.Progress()
	if idx != len(ingest.Stages)-1 {
		t.Errorf("stage = %d, want last", idx)
	}
	if frac != maxRunningProgress {
		t.Errorf("fraction = %v, want %v", frac, maxRunningProgress)
	}
}

func TestEscCancels(t *testing.T) {
	s := New("notes.md", time.Second, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := eventOf(t, cmd).(journey.CancelIngestion); !ok {
		t.Error("esc should cancel ingestion")
	}
}

func TestErrorVariant(t *testing.T) {
	s := New("notes.md", time.Second, errors.New("no cards found"))
	if s.Init() != nil {
		t.Error("error variant should not animate")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "no cards found") || !strings.Contains(view, "Try again") {
		t.Errorf("unexpected error view:\n%s", view)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := eventOf(t, cmd).(journey.RetryIngestion); !ok {
		t.Error("enter on first item should retry")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := eventOf(t, cmd).(journey.CancelIngestion); !ok {
		t.Error("second item should go back")
	}
}

func TestTicksIgnoredOnError(t *testing.T) {
	s := New("notes.md", time.Second, errors.New("boom"))
	if _, cmd := s.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("error variant should not reschedule ticks")
	}
}
