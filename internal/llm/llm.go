// Package llm abstracts the text-completion service used by every
// generation stage.
package llm

import (
	"context"
	"fmt"
	"time"

	"article_pipeline/internal/domain"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call. Empty Model and zero Temperature
// fall back to the client defaults.
type Request struct {
	Messages    []Message
	Temperature float64
	Model       string
}

// Completer returns the text of a single completion.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Settings configures a concrete client.
type Settings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
}

// New builds the completer for s.Provider.
func New(ctx context.Context, s Settings) (Completer, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("llm api key missing: %w", domain.ErrConfiguration)
	}
	if s.Model == "" {
		return nil, fmt.Errorf("llm model missing: %w", domain.ErrConfiguration)
	}

	switch s.Provider {
	case "openai", "":
		return NewOpenAI(s), nil
	case "eino":
		return NewEino(ctx, s)
	default:
		return nil, fmt.Errorf("llm provider %s not supported: %w", s.Provider, domain.ErrConfiguration)
	}
}

// Prompt builds the usual system + user message pair.
func Prompt(system, user string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}
