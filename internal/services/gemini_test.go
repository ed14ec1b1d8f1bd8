package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/para-labs/para-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeminiClient(serverURL string) *GeminiClient {
	return NewGeminiClient(&config.Config{
		GeminiAPIKey: "test-key",
		GeminiAPIURL: serverURL,
		GeminiModel:  "gemini-1.5-flash",
	})
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Keep going, "}, {"text": "you're doing great."}},
				}},
			},
		})
	}))
	defer server.Close()

	text, err := testGeminiClient(server.URL).GenerateContent("context block", "user message")
	require.NoError(t, err)
	assert.Equal(t, "Keep going, you're doing great.", text)

	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 2)
	assert.Equal(t, "context block", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "user message", gotReq.Contents[0].Parts[1].Text)
}

func TestGenerateContent_MissingKey(t *testing.T) {
	client := NewGeminiClient(&config.Config{})
	_, err := client.GenerateContent("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestGenerateContent_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testGeminiClient(server.URL).GenerateContent("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	_, err := testGeminiClient(server.URL).GenerateContent("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestGenerateContent_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := testGeminiClient(server.URL).GenerateContent("hello")
	assert.Error(t, err)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare text", in: `[1,2]`, want: `[1,2]`},
		{name: "json fence", in: "```json\n[1,2]\n```", want: `[1,2]`},
		{name: "plain fence", in: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "whitespace", in: "  [1,2]  ", want: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}
