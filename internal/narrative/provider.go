// Package narrative turns structured diagnostic findings into prose.
// Providers implement analysis.NarrativeProvider; callers choose between
// an LLM-backed provider, a deterministic template, or a chain of both.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/llm"
)

// LLMProvider drafts diagnostic narratives through a language model.
// Errors propagate to the caller; the reporter degrades to its
// unavailable marker, so a model outage never blocks a plan run.
type LLMProvider struct {
	client llm.Client
}

// NewLLMProvider creates a provider backed by the given client.
func NewLLMProvider(client llm.Client) *LLMProvider {
	return &LLMProvider{client: client}
}

func (p *LLMProvider) Narrate(ctx context.Context, facts analysis.NarrativeFacts) (string, error) {
	factsJSON, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling narrative facts: %w", err)
	}

	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskNarrative,
		SystemPrompt: narrativeSystemPrompt,
		UserPrompt:   "Here are the diagnostic findings:\n\n" + string(factsJSON),
	})
	if err != nil {
		return "", err
	}

	return llm.Sanitize(resp.Text)
}

// Chain tries Primary first and falls back to Fallback on any error.
type Chain struct {
	Primary  analysis.NarrativeProvider
	Fallback analysis.NarrativeProvider
}

func (c Chain) Narrate(ctx context.Context, facts analysis.NarrativeFacts) (string, error) {
	text, err := c.Primary.Narrate(ctx, facts)
	if err == nil {
		return text, nil
	}
	return c.Fallback.Narrate(ctx, facts)
}
