// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor turns free-text user instructions into validated section
// patches. It classifies each request as a style or content edit, builds a
// constrained machine instruction for the completion service, and validates
// the response before anything is allowed to reach storage. Structural
// failures on the way in never cross the AI boundary; failures on the way
// back never reach the section document.
package editor

import (
	"context"
	"fmt"

	"pagecraft/internal/models"
	"pagecraft/internal/schema"
	"pagecraft/internal/styles"
)

// Generator is the completion-service contract this package depends on.
// *ai.Registry satisfies it; tests inject stubs.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Engine runs the edit, switch, and generation pipelines against a
// completion service. It holds no mutable state and is safe for concurrent
// use.
type Engine struct {
	llm Generator
}

// NewEngine creates an edit engine backed by the given completion service.
func NewEngine(llm Generator) *Engine {
	return &Engine{llm: llm}
}

// EditResult is the outcome of one edit request. Exactly one of two shapes
// comes back: Applied with the validated patch, or not applied with a
// user-facing Reason and the prior state untouched. There is never a partial
// or intermediate result.
type EditResult struct {
	Kind        EditKind               `json:"kind"`
	Applied     bool                   `json:"applied"`
	Explanation string                 `json:"explanation,omitempty"`
	Reason      string                 `json:"reason,omitempty"`
	Warnings    []string               `json:"warnings,omitempty"`
	Content     map[string]any         `json:"-"`
	Overrides   *models.StyleOverrides `json:"-"`
}

// Edit runs a free-text edit request against a section. kind may be empty to
// use the keyword classifier, or set explicitly by a caller correcting a
// misclassification. The section itself is never mutated; the caller applies
// the returned patch.
//
// Provider failures return a non-nil error (hard failure, caller may retry).
// Parse and validation failures are soft: the result carries an explanatory
// Reason, Applied stays false, and err is nil.
func (e *Engine) Edit(ctx context.Context, section *models.Section, comment string, kind EditKind) (*EditResult, error) {
	if kind == "" {
		kind = Classify(comment)
	}

	switch kind {
	case EditStyle:
		return e.editStyle(ctx, section, comment)
	case EditContent:
		return e.editContent(ctx, section, comment)
	default:
		return nil, fmt.Errorf("editor: unknown edit kind %q", kind)
	}
}

func (e *Engine) editStyle(ctx context.Context, section *models.Section, comment string) (*EditResult, error) {
	raw, err := e.llm.Generate(ctx, styleEditSystemPrompt, buildStyleEditPrompt(section, comment))
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	res := &EditResult{Kind: EditStyle}

	obj, err := extractJSONObject(raw)
	if err != nil {
		res.Reason = "I couldn't determine a concrete style change from that. Please try again with more specific details."
		return res, nil
	}
	res.Explanation = stringField(obj, "explanation")

	rawOverrides, ok := obj["styleOverrides"]
	if !ok {
		res.Reason = "I understood the request but didn't produce a usable style change. Please rephrase and try again."
		return res, nil
	}

	overrides, err := styles.Decode(rawOverrides)
	if err != nil {
		res.Reason = "I encountered an error generating the style changes. Please try again."
		return res, nil
	}

	check := styles.Validate(overrides, section.Type)
	if !check.Valid {
		res.Reason = "I couldn't determine a concrete style change from that. Please try again with more specific details."
		return res, nil
	}

	// Layer the patch onto prior edits rather than replacing them.
	res.Applied = true
	res.Warnings = check.Warnings
	res.Overrides = styles.Merge(section.StyleOverrides, overrides)
	return res, nil
}

func (e *Engine) editContent(ctx context.Context, section *models.Section, comment string) (*EditResult, error) {
	raw, err := e.llm.Generate(ctx, contentEditSystemPrompt, buildContentEditPrompt(section, comment))
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	res := &EditResult{Kind: EditContent}

	obj, err := extractJSONObject(raw)
	if err != nil {
		res.Reason = "I couldn't turn that into a concrete content change. Please try again with more specific details."
		return res, nil
	}
	res.Explanation = stringField(obj, "explanation")

	updated, ok := obj["updatedContent"].(map[string]any)
	if !ok {
		res.Reason = "I understood the request but didn't produce usable content. Please rephrase and try again."
		return res, nil
	}

	normalized, err := schema.Validate(section.Type, updated)
	if err != nil {
		// Preview-less rejection: the explanation still tells the user what
		// the model intended, but no content changes.
		res.Reason = "The proposed content didn't fit this section's structure, so nothing was changed."
		return res, nil
	}

	res.Applied = true
	res.Content = normalized
	return res, nil
}
