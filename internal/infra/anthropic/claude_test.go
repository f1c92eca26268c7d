package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"llm-translator/internal/infra/anthropic"
)

func TestClaudeClient_Translate(t *testing.T) {
	var gotPrompt, gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		gotKey = r.Header.Get("x-api-key")

		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) > 0 {
			gotPrompt = body.Messages[0].Content
		}

		response := map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "Hola mundo"},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := anthropic.NewClaudeClientWithURL("test-key", "claude-test", server.URL)

	got, err := client.Translate(context.Background(), "Hello world", "Spanish")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}

	if got != "Hola mundo" {
		t.Errorf("translation: got %q, want Hola mundo", got)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key: got %q", gotKey)
	}
	if gotPrompt != "Translate the following text to Spanish:\nHello world" {
		t.Errorf("prompt: got %q", gotPrompt)
	}
}

func TestClaudeClient_TranslateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := anthropic.NewClaudeClientWithURL("bad-key", "claude-test", server.URL)

	if _, err := client.Translate(context.Background(), "Hello", "Spanish"); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestClaudeClient_TranslateEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	client := anthropic.NewClaudeClientWithURL("test-key", "claude-test", server.URL)

	if _, err := client.Translate(context.Background(), "Hello", "Spanish"); err == nil {
		t.Fatal("expected error for empty content")
	}
}
