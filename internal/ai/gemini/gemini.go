package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Engine calls the generativelanguage REST endpoint directly with the flat
// {contents:[{parts:[{text}]}]} envelope and reads
// candidates[0].content.parts[0].text back.
type Engine struct {
	APIKey string
	Model  string
	APIURL string // optional full :generateContent URL override (without key)
	httpc  *http.Client
}

func New(key, model, apiURL string) *Engine {
	return &Engine{
		APIKey: key,
		Model:  model,
		APIURL: strings.TrimSpace(apiURL),
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Complete(ctx context.Context, prompt string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is empty")
	}

	body := map[string]any{
		"contents": []any{
			map[string]any{
				"parts": []any{
					map[string]any{"text": prompt},
				},
			},
		},
	}
	payload, _ := json.Marshal(body)

	url := e.APIURL
	if url == "" {
		url = fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", e.Model)
	}
	url += "?key=" + e.APIKey

	req, _ := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		// no content is not a transport error; callers fall back
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
