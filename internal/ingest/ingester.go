// Package ingest turns a document into concept cards. Ingestion runs
// off the UI loop as a cancellable Task.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/conceptswipe/internal/deck"
)

// ErrNoCards is wrapped in a Failure when an ingester produced nothing.
var ErrNoCards = errors.New("no cards could be extracted")

// Ingester converts a document into cards.
type Ingester interface {
	Ingest(ctx context.Context, doc Document) ([]deck.Card, error)
}

// IngesterFunc adapts a function to Ingester.
type IngesterFunc func(ctx context.Context, doc Document) ([]deck.Card, error)

func (f IngesterFunc) Ingest(ctx context.Context, doc Document) ([]deck.Card, error) {
	return f(ctx, doc)
}

// Failure reports that a document could not be turned into a deck.
type Failure struct {
	Document string
	Err      error
}

func (f *Failure) Error() string {
	if f.Document == "" {
		return fmt.Sprintf("ingestion failed: %v", f.Err)
	}
	return fmt.Sprintf("ingestion of %s failed: %v", f.Document, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Run calls ing and normalizes the outcome: an empty result becomes
// ErrNoCards and every error is wrapped in a *Failure.
func Run(ctx context.Context, ing Ingester, doc Document) ([]deck.Card, error) {
	cards, err := ing.Ingest(ctx, doc)
	if err == nil && len(cards) == 0 {
		err = ErrNoCards
	}
	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			return nil, err
		}
		return nil, &Failure{Document: doc.Name, Err: err}
	}
	return cards, nil
}
