package ai

import (
	"context"
	"errors"
)

// Engine turns one prompt into one free-text completion. No retries, no
// streaming; a failed call is terminal for the request.
type Engine interface {
	Name() string
	GetModel() string
	Complete(ctx context.Context, prompt string) (string, error)
}

type Engines struct {
	Default string // engine picked when the request names none

	Gemini    Engine
	GeminiSDK Engine
	OpenAI    Engine
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	if name == "" {
		name = e.Default
	}
	var eng Engine
	switch name {
	case "", "gemini":
		eng = e.Gemini
	case "gemini-sdk":
		eng = e.GeminiSDK
	case "gpt", "openai":
		eng = e.OpenAI
	default:
		return nil, errors.New("unknown engine; use 'gemini', 'gemini-sdk' or 'openai'")
	}
	if eng == nil {
		return nil, errors.New("engine " + name + " is not configured")
	}
	return eng, nil
}
