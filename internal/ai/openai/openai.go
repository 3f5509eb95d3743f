package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type Engine struct {
	Model  string
	client *openai.Client
}

func New(key, model string) *Engine {
	e := &Engine{Model: model}
	if key != "" {
		e.client = openai.NewClient(key)
	}
	return e
}

func (e *Engine) Name() string     { return "openai" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Complete(ctx context.Context, prompt string) (string, error) {
	if e.client == nil {
		return "", fmt.Errorf("OPENAI_API_KEY is empty")
	}
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
