// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

// ModerationResult reports whether a prompt passed the safety check and, when
// it did not, which categories were flagged.
type ModerationResult struct {
	Safe       bool     `json:"safe"`
	Categories []string `json:"categories,omitempty"`
}

// Moderator screens user prompts before they reach a completion model.
type Moderator interface {
	CheckSafety(ctx context.Context, prompt string) (*ModerationResult, error)
}

// fallbackModerator tries the primary moderator first and switches to the
// backup when the primary returns an error (rate limit, expired key). A
// flagged result from the primary is final and does not trigger the backup.
type fallbackModerator struct {
	primary Moderator
	backup  Moderator
}

func (m *fallbackModerator) CheckSafety(ctx context.Context, prompt string) (*ModerationResult, error) {
	result, err := m.primary.CheckSafety(ctx, prompt)
	if err == nil {
		return result, nil
	}
	return m.backup.CheckSafety(ctx, prompt)
}

// openAIModerator calls OpenAI's moderation endpoint.
type openAIModerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func newOpenAIModerator(apiKey, baseURL string) *openAIModerator {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &openAIModerator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   "omni-moderation-latest",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *openAIModerator) CheckSafety(ctx context.Context, prompt string) (*ModerationResult, error) {
	return checkModeration(ctx, m.client, m.baseURL+"/moderations", m.apiKey, m.model, prompt)
}

// mistralModerator calls Mistral's moderation endpoint, which speaks the same
// wire format as OpenAI's.
type mistralModerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func newMistralModerator(apiKey, baseURL string) *mistralModerator {
	if baseURL == "" {
		baseURL = "https://api.mistral.ai/v1"
	}
	return &mistralModerator{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   "mistral-moderation-latest",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *mistralModerator) CheckSafety(ctx context.Context, prompt string) (*ModerationResult, error) {
	return checkModeration(ctx, m.client, m.baseURL+"/moderations", m.apiKey, m.model, prompt)
}

type moderationRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged    bool            `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}

func checkModeration(ctx context.Context, client *http.Client, url, apiKey, model, prompt string) (*ModerationResult, error) {
	payload, err := json.Marshal(moderationRequest{Model: model, Input: []string{prompt}})
	if err != nil {
		return nil, fmt.Errorf("moderation marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("moderation request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moderation http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("moderation read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("moderation API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result moderationResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("moderation unmarshal: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, fmt.Errorf("moderation: empty results")
	}

	r := result.Results[0]
	out := &ModerationResult{Safe: !r.Flagged}
	if r.Flagged {
		for category, hit := range r.Categories {
			if hit {
				out.Categories = append(out.Categories, category)
			}
		}
		sort.Strings(out.Categories)
	}
	return out, nil
}
