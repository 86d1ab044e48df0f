package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDeck is returned when a deck is constructed from no cards or
	// from cards with colliding IDs.
	ErrInvalidDeck = errors.New("invalid deck")

	// ErrExhausted is returned by Current once every card has been resolved.
	ErrExhausted = errors.New("deck exhausted")

	// ErrAlreadyExhausted is returned when advancing past the last card.
	ErrAlreadyExhausted = errors.New("deck already exhausted")
)

// Deck is an ordered sequence of cards with a cursor. The cursor ranges
// over [0, Len()]; a cursor equal to Len() means the deck is exhausted.
// A Deck has a single owner and is not safe for concurrent use.
type Deck struct {
	cards  []Card
	cursor int
}

// New builds a deck from cards. The input slice is copied.
func New(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards", ErrInvalidDeck)
	}
	seen := make(map[string]bool, len(cards))
	owned := make([]Card, len(cards))
	for i, c := range cards {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: card %d has no id", ErrInvalidDeck, i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: duplicate card id %q", ErrInvalidDeck, c.ID)
		}
		seen[c.ID] = true
		owned[i] = c.clone()
	}
	return &Deck{cards: owned}, nil
}

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.cards) }

// Cursor returns the index of the current card.
func (d *Deck) Cursor() int { return d.cursor }

// Remaining returns how many cards are still unresolved.
func (d *Deck) Remaining() int { return len(d.cards) - d.cursor }

// Exhausted reports whether every card has been resolved.
func (d *Deck) Exhausted() bool { return d.cursor >= len(d.cards) }

// Current returns the card under the cursor.
func (d *Deck) Current() (Card, error) {
	if d.Exhausted() {
		return Card{}, ErrExhausted
	}
	return d.cards[d.cursor].clone(), nil
}

// Advance moves the cursor to the next card. On an exhausted deck it
// returns ErrAlreadyExhausted and leaves the cursor unchanged.
func (d *Deck) Advance() error {
	if d.Exhausted() {
		return ErrAlreadyExhausted
	}
	d.cursor++
	return nil
}

// ProgressFraction is (cursor+1)/len while cards remain and 1 once
// exhausted. It is meant for progress bars only.
func (d *Deck) ProgressFraction() float64 {
	if d.Exhausted() {
		return 1
	}
	return float64(d.cursor+1) / float64(len(d.cards))
}

// Cards returns a copy of all cards in order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.clone()
	}
	return out
}
