// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// generate.go builds a complete landing page from a business description.
// The model proposes a sequence of typed sections; each one is validated
// against its schema and default-filled before anything is persisted.
// Invalid sections are dropped with a recorded reason rather than failing
// the whole page, but a page with no valid sections is rejected outright.
package editor

import (
	"context"
	"fmt"

	"pagecraft/internal/models"
	"pagecraft/internal/schema"
	"pagecraft/internal/templates"
)

// GeneratedSection is one validated section proposal, ready to persist with
// the default template for its type.
type GeneratedSection struct {
	Type       models.SectionType `json:"type"`
	TemplateID string             `json:"template_id"`
	Content    map[string]any     `json:"content"`
}

// GeneratedPage is the validated result of a page-generation request.
// Skipped records, per dropped section, why it did not survive validation.
type GeneratedPage struct {
	Title    string             `json:"title"`
	Sections []GeneratedSection `json:"sections"`
	Skipped  []string           `json:"skipped,omitempty"`
}

// GeneratePage asks the completion service for a full page for the given
// business description and validates every proposed section.
func (e *Engine) GeneratePage(ctx context.Context, description string) (*GeneratedPage, error) {
	raw, err := e.llm.Generate(ctx, generateSystemPrompt, buildGeneratePrompt(description))
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	rawSections, ok := obj["sections"].([]any)
	if !ok {
		return nil, &ResponseSemanticError{Detail: "missing sections array"}
	}

	page := &GeneratedPage{Title: stringField(obj, "title")}
	if page.Title == "" {
		page.Title = "Untitled page"
	}

	seen := make(map[models.SectionType]bool)
	for i, rs := range rawSections {
		sec, ok := rs.(map[string]any)
		if !ok {
			page.Skipped = append(page.Skipped, fmt.Sprintf("section %d: not an object", i))
			continue
		}

		t := models.SectionType(stringField(sec, "type"))
		if !t.IsValid() {
			page.Skipped = append(page.Skipped, fmt.Sprintf("section %d: unknown type %q", i, stringField(sec, "type")))
			continue
		}
		if seen[t] {
			page.Skipped = append(page.Skipped, fmt.Sprintf("section %d: duplicate type %q", i, t))
			continue
		}

		content, ok := sec["content"].(map[string]any)
		if !ok {
			page.Skipped = append(page.Skipped, fmt.Sprintf("section %d (%s): missing content object", i, t))
			continue
		}

		normalized, err := schema.Validate(t, content)
		if err != nil {
			page.Skipped = append(page.Skipped, fmt.Sprintf("section %d (%s): %v", i, t, err))
			continue
		}

		seen[t] = true
		page.Sections = append(page.Sections, GeneratedSection{
			Type:       t,
			TemplateID: templates.DefaultIDFor(t),
			Content:    normalized,
		})
	}

	if len(page.Sections) == 0 {
		return nil, &ResponseSemanticError{Detail: "no valid sections in response"}
	}
	return page, nil
}
