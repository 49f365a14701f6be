// Package llm is the planner collaborator: an opaque text producer that
// turns user commands into action plans, long-form content, and target
// normalizations. Two backends are supported, selected at init.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotInitialized is returned when Generate is called before Init.
var ErrNotInitialized = errors.New("llm: provider not initialized")

type Config struct {
	Backend    string // "gemini" (default) or "ollama"
	Model      string
	OllamaHost string
}

type Provider interface {
	Init(cfg Config) error
	DefaultModel() string
	AllowedModelOrDefault(model string) string
	Generate(ctx context.Context, prompt, model string) (string, error)
}

var (
	active   Provider
	activeID string
)

func Init(cfg Config) error {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = "gemini"
	}
	var p Provider
	switch backend {
	case "ollama":
		p = &ollamaProvider{}
		activeID = "ollama"
	case "gemini":
		p = &geminiProvider{}
		activeID = "gemini"
	default:
		return fmt.Errorf("unsupported LLM backend: %s", backend)
	}
	if err := p.Init(cfg); err != nil {
		return err
	}
	active = p
	return nil
}

func ActiveBackend() string {
	if active == nil {
		return ""
	}
	return activeID
}

func Generate(ctx context.Context, prompt, model string) (string, error) {
	if active == nil {
		return "", ErrNotInitialized
	}
	return active.Generate(ctx, prompt, model)
}
