package notes

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/conceptswipe/internal/ingest"
)

func TestBrowse(t *testing.T) {
	cards := ingest.SampleCards()[:3]
	s := New(cards)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.Selected() != 0 {
		t.Errorf("up at top should stay at 0, got %d", s.Selected())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.Selected() != 2 {
		t.Errorf("selected = %d, want 2", s.Selected())
	}
	if !strings.Contains(s.View(120, 40), cards[2].Title) {
		t.Error("expected selected card title in view")
	}
}

func TestEmpty(t *testing.T) {
	s := New(nil)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !strings.Contains(s.View(80, 24), "No saved notes") {
		t.Error("expected empty message")
	}
}
