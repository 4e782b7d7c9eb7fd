package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pagecraft/internal/ai"
)

type fakeProvider struct{ name string }

func (p *fakeProvider) Generate(context.Context, string, string) (string, error) { return "", nil }
func (p *fakeProvider) Name() string                                             { return p.name }

func providerAPI() *API {
	registry := ai.NewRegistry("openai", nil)
	registry.Register("openai", &fakeProvider{name: "openai"})
	registry.Register("claude", &fakeProvider{name: "claude"})
	return NewAPI(nil, nil, nil, nil, registry)
}

func TestAIProviders(t *testing.T) {
	api := providerAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/ai/providers", nil)
	rec := httptest.NewRecorder()
	api.AIProviders(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Active    string   `json:"active"`
		Available []string `json:"available"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Active != "openai" {
		t.Errorf("active = %q", resp.Active)
	}
	if len(resp.Available) != 2 || resp.Available[0] != "claude" || resp.Available[1] != "openai" {
		t.Errorf("available = %v, want sorted names", resp.Available)
	}
}

func TestAISetProvider(t *testing.T) {
	api := providerAPI()

	req := httptest.NewRequest(http.MethodPut, "/api/ai/provider", strings.NewReader(`{"provider": "claude"}`))
	rec := httptest.NewRecorder()
	api.AISetProvider(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if api.aiRegistry.ActiveName() != "claude" {
		t.Errorf("active = %q", api.aiRegistry.ActiveName())
	}
}

func TestAISetProviderUnavailable(t *testing.T) {
	api := providerAPI()

	req := httptest.NewRequest(http.MethodPut, "/api/ai/provider", strings.NewReader(`{"provider": "gemini"}`))
	rec := httptest.NewRecorder()
	api.AISetProvider(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if api.aiRegistry.ActiveName() != "openai" {
		t.Error("failed switch changed the active provider")
	}
}

func TestAISetProviderBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty provider", `{"provider": ""}`, http.StatusBadRequest},
		{"unknown field", `{"provider": "openai", "force": true}`, http.StatusBadRequest},
		{"not json", `openai`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := providerAPI()

			req := httptest.NewRequest(http.MethodPut, "/api/ai/provider", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			api.AISetProvider(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
