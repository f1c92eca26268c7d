package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"llm-translator/internal/infra/openai"
)

func TestChatClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected auth header: %q", got)
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model: got %s", req.Model)
		}
		if len(req.Messages) != 1 || !strings.HasPrefix(req.Messages[0].Content, "Translate the following text to Japanese:\n") {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"こんにちは"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := openai.NewChatClientWithURL("sk-test", "", server.URL)

	got, err := client.Translate(context.Background(), "Hello", "Japanese")
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if got != "こんにちは" {
		t.Errorf("got %q", got)
	}
}

func TestChatClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer server.Close()

	client := openai.NewChatClientWithURL("bad", "gpt-4o-mini", server.URL)
	_, err := client.Translate(context.Background(), "Hello", "French")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestChatClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := openai.NewChatClientWithURL("", "", server.URL)
	if _, err := client.Translate(context.Background(), "Hello", "French"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
