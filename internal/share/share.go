// Package share renders completed review sessions for sharing and export.
package share

import (
	"fmt"
	"time"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/session"
)

// Summary is the one-line brag text for a completed session.
func Summary(rec *session.Record) string {
	percent, _ := rec.Stats.MasteryPercent()
	return fmt.Sprintf("Just completed a learning session! Grasped %d concepts in %d minutes with %d%% mastery rate! 🧠✨",
		rec.Stats.Accepted, rec.Stats.ElapsedSeconds/60, percent)
}

// Report is the export view of a Record. Derived metrics are nil when
// undefined.
type Report struct {
	SessionID      string    `json:"session_id" yaml:"session_id"`
	CompletedAt    time.Time `json:"completed_at" yaml:"completed_at"`
	TotalCards     int       `json:"total_cards" yaml:"total_cards"`
	Accepted       int       `json:"accepted" yaml:"accepted"`
	Rejected       int       `json:"rejected" yaml:"rejected"`
	Archived       int       `json:"archived" yaml:"archived"`
	ElapsedSeconds int       `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	MasteryPercent *int      `json:"mastery_percent" yaml:"mastery_percent"`
	CardsPerMinute *int      `json:"cards_per_minute" yaml:"cards_per_minute"`
	Retention      string    `json:"retention" yaml:"retention"`
	Notes          []Note    `json:"notes" yaml:"notes"`
}

// Note is an archived card.
type Note struct {
	ID    string   `json:"id" yaml:"id"`
	Kind  string   `json:"kind" yaml:"kind"`
	Title string   `json:"title" yaml:"title"`
	Body  string   `json:"body" yaml:"body"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewReport builds the export view of rec.
func NewReport(rec *session.Record) Report {
	r := Report{
		SessionID:      rec.SessionID,
		CompletedAt:    rec.CompletedAt.UTC(),
		TotalCards:     rec.TotalCards,
		Accepted:       rec.Stats.Accepted,
		Rejected:       rec.Stats.Rejected,
		Archived:       rec.Stats.Archived,
		ElapsedSeconds: rec.Stats.ElapsedSeconds,
		Retention:      string(session.RetentionOf(rec.Stats)),
		Notes:          make([]Note, 0, len(rec.ArchivedCards)),
	}
	if p, ok := rec.Stats.MasteryPercent(); ok {
		r.MasteryPercent = &p
	}
	if cpm, ok := rec.Stats.CardsPerMinute(); ok {
		r.CardsPerMinute = &cpm
	}
	for _, c := range rec.ArchivedCards {
		r.Notes = append(r.Notes, noteOf(c))
	}
	return r
}

func noteOf(c deck.Card) Note {
	return Note{ID: c.ID, Kind: string(c.Kind), Title: c.Title, Body: c.Body, Tags: c.Tags}
}

// Clock formats seconds as m:ss.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
