package pushover_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"llm-translator/internal/domain"
	"llm-translator/internal/infra/pushover"
)

func TestNotify_SendsAboveMinLevel(t *testing.T) {
	var got []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parsing form: %v", err)
		}
		if r.PostForm.Get("token") != "tok" || r.PostForm.Get("user") != "usr" {
			t.Errorf("unexpected credentials: %v", r.PostForm)
		}
		got = append(got, r.PostForm.Get("message"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := pushover.NewClientWithURL("tok", "usr", domain.NoticeWarning, server.URL)
	ctx := context.Background()

	notices := []domain.Notice{
		{Level: domain.NoticeInfo, Text: "info"},
		{Level: domain.NoticeSuccess, Text: "Translation completed!"},
		{Level: domain.NoticeWarning, Text: "Please translate text first before converting to speech."},
		{Level: domain.NoticeError, Text: "Translation failed: boom"},
	}
	for _, n := range notices {
		if err := client.Notify(ctx, n); err != nil {
			t.Fatalf("Notify(%q) error: %v", n.Text, err)
		}
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d: %v", len(got), got)
	}
	if got[1] != "Translation failed: boom" {
		t.Errorf("unexpected message: %q", got[1])
	}
}

func TestNotify_Unconfigured(t *testing.T) {
	client := pushover.NewClientWithURL("", "", domain.NoticeInfo, "http://127.0.0.1:0")
	if err := client.Notify(context.Background(), domain.Notice{Level: domain.NoticeError, Text: "x"}); err != nil {
		t.Fatalf("expected nil for unconfigured client, got %v", err)
	}
}

func TestNotify_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := pushover.NewClientWithURL("tok", "usr", "", server.URL)
	if err := client.Notify(context.Background(), domain.Notice{Level: domain.NoticeError, Text: "x"}); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
