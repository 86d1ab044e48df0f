package ingest

import (
	"fmt"
	"strings"

	"github.com/abhisek/conceptswipe/internal/llm"
)

const cardSystemPrompt = `You turn study material into short concept cards for a swipe-based review app. Each card must stand on its own and be readable in under twenty seconds.`

func buildCardPrompt(name, text string, maxCards int) string {
	var b strings.Builder

	if name != "" {
		fmt.Fprintf(&b, "Document: %s\n", name)
	}
	if maxCards <= 0 {
		maxCards = 12
	}
	fmt.Fprintf(&b, "Create between 3 and %d cards.\n", maxCards)

	b.WriteString(`
Card rules:
1. title: 2-6 words naming the idea.
2. body: 1-3 plain sentences. Prefer an everyday analogy over jargon.
3. kind: "concept" for a definition, "diagram" for a process or structure, "analogy" for a comparison, "example" for a worked case.
4. difficulty: beginner, intermediate or advanced relative to the document.
5. tags: 1-3 short lowercase topic labels without '#'.
6. visual: the illustration that would help most, or "none".
Order cards so earlier ones introduce ideas later ones build on.

Material:
`)
	b.WriteString(text)
	return b.String()
}

// CardSchema is the structured output contract for card generation.
var CardSchema = &llm.Schema{
	Name:        "concept-cards",
	Description: "A list of concept cards extracted from a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string", "description": "2-6 word headline"},
						"body":  map[string]any{"type": "string", "description": "1-3 sentence explanation"},
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"concept", "diagram", "analogy", "example"},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"tags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"visual": map[string]any{
							"type": "string",
							"enum": []any{"none", "chart", "diagram", "graph", "illustration"},
						},
					},
					"required":             []any{"title", "body", "kind", "difficulty", "tags", "visual"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}
