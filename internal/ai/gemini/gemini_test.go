package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, reply string, gotPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		require.Len(t, body.Contents[0].Parts, 1)
		if gotPrompt != nil {
			*gotPrompt = body.Contents[0].Parts[0].Text
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
}

func candidatesReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustQuote(text) + `}]}}]}`
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCompleteSendsEnvelopeAndReadsText(t *testing.T) {
	var prompt string
	srv := newTestServer(t, http.StatusOK, candidatesReply("hello back"), &prompt)
	defer srv.Close()

	e := New("test-key", "gemini-2.0-flash", srv.URL)
	got, err := e.Complete(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello back", got)
	assert.Equal(t, "say hello", prompt)
}

func TestCompleteNon200IsError(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{"error":{"message":"quota"}}`, nil)
	defer srv.Close()

	e := New("test-key", "gemini-2.0-flash", srv.URL)
	_, err := e.Complete(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota")
}

func TestCompleteEmptyCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"candidates":[]}`, nil)
	defer srv.Close()

	e := New("test-key", "gemini-2.0-flash", srv.URL)
	got, err := e.Complete(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCompleteMissingKey(t *testing.T) {
	e := New("", "gemini-2.0-flash", "")
	_, err := e.Complete(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
