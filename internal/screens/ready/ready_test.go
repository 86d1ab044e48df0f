package ready

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

func TestEstimatedMinutes(t *testing.T) {
	tests := map[int]int{0: 0, 1: 1, 2: 1, 5: 3, 12: 6}
	for n, want := range tests {
		if got := EstimatedMinutes(n); got != want {
			t.Errorf("EstimatedMinutes(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestViewSummarizesDeck(t *testing.T) {
	s := New(ingest.SampleCards(), 2, nil)
	view := s.View(100, 40)
	for _, want := range []string{"5 concepts ready to master", "~3m", "Neural Networks"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPreviewRotates(t *testing.T) {
	cards := ingest.SampleCards()
	s := New(cards, 0, nil)
	if s.Init() == nil {
		t.Fatal("expected preview ticks for a multi-card deck")
	}
	for i := 0; i < len(cards); i++ {
		s.Update(previewMsg(time.Now()))
	}
	if s.preview != 0 {
		t.Errorf("preview should wrap around, got %d", s.preview)
	}
	s.Update(previewMsg(time.Now()))
	if !strings.Contains(s.View(100, 40), cards[1].Title) {
		t.Error("expected the second card title after one rotation")
	}
}

func TestEnterStartsOnce(t *testing.T) {
	s := New(ingest.SampleCards(), 0, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected start command")
	}
	msg, ok := cmd().(screen.EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", cmd())
	}
	if _, ok := msg.Event.(journey.StartReview); !ok {
		t.Errorf("expected StartReview, got %T", msg.Event)
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("second enter should be ignored")
	}
}

func TestReviewErrorShown(t *testing.T) {
	s := New(ingest.SampleCards(), 0, errors.New("tracker not started"))
	if !strings.Contains(s.View(100, 40), "tracker not started") {
		t.Error("expected the review error in the view")
	}
}
