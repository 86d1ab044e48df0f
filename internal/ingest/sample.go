package ingest

import (
	"context"
	"time"

	"github.com/abhisek/conceptswipe/internal/deck"
)

// Sample is a stand-in ingester: it waits for Delay and then returns a
// fixed deck, regardless of the document.
type Sample struct {
	Delay time.Duration
	Cards []deck.Card
}

// NewSample returns a Sample ingester with the built-in deck.
func NewSample(delay time.Duration) *Sample {
	return &Sample{Delay: delay, Cards: SampleCards()}
}

func (s *Sample) Ingest(ctx context.Context, _ Document) ([]deck.Card, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	out := make([]deck.Card, len(s.Cards))
	copy(out, s.Cards)
	return out, nil
}

// SampleCards is the built-in introductory machine-learning deck.
func SampleCards() []deck.Card {
	return []deck.Card{
		{
			ID:         "1",
			Kind:       deck.KindConcept,
			Title:      "Neural Networks",
			Body:       "Think of neural networks like your brain's neurons. Each connection gets stronger when it helps make correct decisions, just like learning to ride a bike.",
			Tags:       []string{"ai", "analogy", "beginner"},
			Difficulty: deck.DifficultyBeginner,
			Visual:     deck.VisualDiagram,
		},
		{
			ID:         "2",
			Kind:       deck.KindDiagram,
			Title:      "Machine Learning Process",
			Body:       "Machine learning follows a simple cycle: collect data, train the model, make predictions, and improve based on results.",
			Tags:       []string{"ml", "process", "intermediate"},
			Difficulty: deck.DifficultyIntermediate,
			Visual:     deck.VisualChart,
		},
		{
			ID:         "3",
			Kind:       deck.KindAnalogy,
			Title:      "Deep Learning Layers",
			Body:       "Deep learning is like looking at a photo through multiple filters. Each layer recognizes different features - first edges, then shapes, then objects.",
			Tags:       []string{"deep-learning", "layers", "beginner"},
			Difficulty: deck.DifficultyBeginner,
			Visual:     deck.VisualIllustration,
		},
		{
			ID:         "4",
			Kind:       deck.KindExample,
			Title:      "Gradient Descent",
			Body:       "Imagine you're hiking down a mountain in fog. Gradient descent is like feeling the slope with your feet to find the steepest path down.",
			Tags:       []string{"optimization", "algorithm", "intermediate"},
			Difficulty: deck.DifficultyIntermediate,
			Visual:     deck.VisualGraph,
		},
		{
			ID:         "5",
			Kind:       deck.KindConcept,
			Title:      "Overfitting",
			Body:       "Overfitting is like memorizing answers instead of understanding concepts. The model performs great on practice tests but fails on new questions.",
			Tags:       []string{"overfitting", "generalization", "intermediate"},
			Difficulty: deck.DifficultyIntermediate,
			Visual:     deck.VisualChart,
		},
	}
}
