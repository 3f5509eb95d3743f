package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// SDKEngine is the same backend reached through the official client library
// instead of the raw REST envelope. Behavior is identical from the caller's
// side: one prompt in, one text completion out.
type SDKEngine struct {
	APIKey string
	Model  string
}

func NewSDK(key, model string) *SDKEngine {
	return &SDKEngine{
		APIKey: strings.TrimSpace(key),
		Model:  strings.TrimSpace(model),
	}
}

func (e *SDKEngine) Name() string     { return "gemini-sdk" }
func (e *SDKEngine) GetModel() string { return e.Model }

func (e *SDKEngine) Complete(ctx context.Context, prompt string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return firstText(resp), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
