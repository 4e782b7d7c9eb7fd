package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClaudeGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "sk-ant-test" {
			t.Errorf("api key header = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("missing anthropic-version header")
		}

		var req claudeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.System != "be terse" {
			t.Errorf("system = %q", req.System)
		}
		if req.MaxTokens == 0 {
			t.Error("max_tokens not set")
		}

		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContentBlock{
				{Type: "thinking", Text: "hmm"},
				{Type: "text", Text: "hello"},
			},
		})
	}))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "sk-ant-test", Model: "claude-sonnet-4-20250514", BaseURL: srv.URL})

	out, err := p.Generate(context.Background(), "be terse", "say hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "hello" {
		t.Errorf("got %q, want the first text block", out)
	}
}

func TestClaudeNoTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(claudeResponse{})
	}))
	defer srv.Close()

	p := newClaude(ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected an error for a response without text content")
	}
}
