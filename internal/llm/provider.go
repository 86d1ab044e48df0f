package llm

import (
	"context"
	"encoding/json"
)

// Provider turns a prompt into (optionally schema-constrained) JSON.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the returned
	// Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model identifier.
	ModelID() string
}

// Request is a single generation request.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for structured output.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// SingleTurn builds the common one-message request.
func SingleTurn(system, prompt string, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens: maxTokens,
	}
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who sent a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "concept-cards". It doubles as
	// the cache key for the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// StopReason is the normalized reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Usage is token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
