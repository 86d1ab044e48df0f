package deck

import (
	"fmt"
	"strings"
)

// Kind is the presentation category of a card.
type Kind string

const (
	KindConcept Kind = "concept"
	KindDiagram Kind = "diagram"
	KindAnalogy Kind = "analogy"
	KindExample Kind = "example"
)

// AllKinds returns every card kind in display order.
func AllKinds() []Kind {
	return []Kind{KindConcept, KindDiagram, KindAnalogy, KindExample}
}

// ParseKind converts a string (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown card kind %q", s)
}

// Difficulty is the author's estimate of how demanding a card is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty converts a string (case-insensitive) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Visual is an optional rendering hint attached to a card.
type Visual string

const (
	VisualNone         Visual = ""
	VisualChart        Visual = "chart"
	VisualDiagram      Visual = "diagram"
	VisualGraph        Visual = "graph"
	VisualIllustration Visual = "illustration"
)

// Card is a single concept card. Cards are treated as immutable once
// they are placed in a Deck.
type Card struct {
	// ID uniquely identifies the card within its deck.
	ID string

	// Kind is the presentation category (concept, diagram, ...).
	Kind Kind

	// Title is the short headline shown at the top of the card.
	Title string

	// Body is the explanatory text.
	Body string

	// Tags is an ordered set of topic labels without a leading '#'.
	Tags []string

	// Difficulty is the estimated difficulty level.
	Difficulty Difficulty

	// Visual is an optional hint for how the card could be illustrated.
	Visual Visual
}

// NormalizeTags strips leading '#' and surrounding whitespace, drops empty
// entries and removes duplicates while keeping first-occurrence order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(t), "#"))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func (c Card) clone() Card {
	c.Tags = NormalizeTags(c.Tags)
	return c
}
