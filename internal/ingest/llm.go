package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/conceptswipe/internal/deck"
	"github.com/abhisek/conceptswipe/internal/llm"
)

// LLMConfig tunes the LLM ingester.
type LLMConfig struct {
	MaxCards      int
	MaxTokens     int
	Temperature   float64
	MaxInputChars int
}

// DefaultLLMConfig returns defaults suitable for short documents.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxCards:      12,
		MaxTokens:     4096,
		Temperature:   0.4,
		MaxInputChars: 60_000,
	}
}

// LLM extracts cards by prompting a language model.
type LLM struct {
	provider llm.Provider
	cfg      LLMConfig
	newID    func() string
}

// NewLLM creates an LLM ingester.
func NewLLM(provider llm.Provider, cfg LLMConfig) *LLM {
	return &LLM{provider: provider, cfg: cfg, newID: uuid.NewString}
}

type cardsOutput struct {
	Cards []cardOutput `json:"cards"`
}

type cardOutput struct {
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Kind       string   `json:"kind"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	Visual     string   `json:"visual"`
}

func (l *LLM) Ingest(ctx context.Context, doc Document) ([]deck.Card, error) {
	if doc.Binary {
		return nil, errors.New("document is not text; only UTF-8 documents can be sent to the model")
	}
	text := strings.TrimSpace(doc.Text)
	if text == "" {
		return nil, errors.New("document is empty")
	}
	if l.cfg.MaxInputChars > 0 && len(text) > l.cfg.MaxInputChars {
		text = truncateUTF8(text, l.cfg.MaxInputChars)
	}

	req := llm.SingleTurn(cardSystemPrompt, buildCardPrompt(doc.Name, text, l.cfg.MaxCards), l.cfg.MaxTokens)
	req.Schema = CardSchema
	req.Temperature = l.cfg.Temperature

	resp, err := l.provider.Generate(llm.WithPurpose(ctx, "ingest"), req)
	if err != nil {
		return nil, fmt.Errorf("card generation: %w", err)
	}

	var out cardsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse card response: %w", err)
	}

	cards := make([]deck.Card, 0, len(out.Cards))
	for _, c := range out.Cards {
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Body) == "" {
			continue
		}
		kind, err := deck.ParseKind(c.Kind)
		if err != nil {
			kind = deck.KindConcept
		}
		diff, err := deck.ParseDifficulty(c.Difficulty)
		if err != nil {
			diff = deck.DifficultyIntermediate
		}
		visual := deck.Visual(c.Visual)
		if visual == "none" {
			visual = deck.VisualNone
		}
		cards = append(cards, deck.Card{
			ID:         l.newID(),
			Kind:       kind,
			Title:      strings.TrimSpace(c.Title),
			Body:       strings.TrimSpace(c.Body),
			Tags:       deck.NormalizeTags(c.Tags),
			Difficulty: diff,
			Visual:     visual,
		})
		if l.cfg.MaxCards > 0 && len(cards) == l.cfg.MaxCards {
			break
		}
	}
	return cards, nil
}

func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
