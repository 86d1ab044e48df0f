package welcome

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

func fakeOpener(calls *[]string) Opener {
	return func(path string) (ingest.Document, error) {
		*calls = append(*calls, path)
		if path == "missing.md" {
			return ingest.Document{}, errors.New("open missing.md: no such file")
		}
		return ingest.NewDocument(path, "# notes"), nil
	}
}

func typeText(w *WelcomeScreen, s string) {
	for _, r := range s {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(w *WelcomeScreen) tea.Cmd {
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func submitted(t *testing.T, cmd tea.Cmd) journey.SubmitDocument {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", cmd())
	}
	ev, ok := msg.Event.(journey.SubmitDocument)
	if !ok {
		t.Fatalf("expected SubmitDocument, got %T", msg.Event)
	}
	return ev
}

func TestSubmitPath(t *testing.T) {
	var calls []string
	w := New(fakeOpener(&calls), false)
	typeText(w, "notes.md")

	ev := submitted(t, enter(w))
	if ev.Doc.Name != "notes.md" || ev.Doc.Text != "# notes" {
		t.Errorf("unexpected document %+v", ev.Doc)
	}
	if len(calls) != 1 || calls[0] != "notes.md" {
		t.Errorf("opener calls = %v", calls)
	}
}

func TestSubmitOnlyOnce(t *testing.T) {
	var calls []string
	w := New(fakeOpener(&calls), false)
	typeText(w, "notes.md")
	enter(w)
	if cmd := enter(w); cmd != nil {
		t.Error("second enter should not submit again")
	}
}

func TestOpenErrorShownInline(t *testing.T) {
	var calls []string
	w := New(fakeOpener(&calls), false)
	typeText(w, "missing.md")

	if cmd := enter(w); cmd != nil {
		t.Fatal("failed open should not submit")
	}
	if !strings.Contains(w.View(80, 24), "no such file") {
		t.Error("expected the open error in the view")
	}

	// Editing clears the error and allows another attempt.
	w.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if w.input.Err() != "" {
		t.Error("keypress should clear the error")
	}
}

func TestEmptyPath(t *testing.T) {
	var calls []string

	w := New(fakeOpener(&calls), false)
	if cmd := enter(w); cmd != nil {
		t.Error("empty path without demo should not submit")
	}
	if w.input.Err() == "" {
		t.Error("expected an inline error for an empty path")
	}

	w = New(fakeOpener(&calls), true)
	ev := submitted(t, enter(w))
	if ev.Doc.Name != "demo deck" {
		t.Errorf("demo document name = %q", ev.Doc.Name)
	}
	if len(calls) != 0 {
		t.Errorf("demo submit should not open files, got %v", calls)
	}
}

func TestSparkleTicks(t *testing.T) {
	var calls []string
	w := New(fakeOpener(&calls), true)
	_, cmd := w.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if w.tickCount != 1 {
		t.Errorf("tickCount = %d", w.tickCount)
	}
}

func TestViewShowsBanner(t *testing.T) {
	var calls []string
	view := New(fakeOpener(&calls), true).View(100, 30)
	if !strings.Contains(view, "bite-sized brilliance") {
		t.Error("expected tagline in view")
	}
	if !strings.Contains(RenderBanner(20), "C O N C E P T") {
		t.Error("expected compact banner on narrow terminals")
	}
}
