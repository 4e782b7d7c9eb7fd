// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// switch.go implements the template-switch compatibility protocol. Switching
// between two templates of the same section type is a pure metadata update:
// the content schema is identical by construction, so no model call is made.
// Only a cross-type switch pays for a semantic remap through the completion
// service, and a remap that fails to parse or validate leaves the section
// completely unchanged.
package editor

import (
	"context"

	"pagecraft/internal/models"
	"pagecraft/internal/schema"
	"pagecraft/internal/templates"
)

// SwitchResult is the validated outcome of a template switch. For a same-type
// switch Content is the section's existing content, untouched; for a
// cross-type switch it is the validated mapped content. The two always change
// together or not at all.
type SwitchResult struct {
	TemplateID  string             `json:"template_id"`
	SectionType models.SectionType `json:"section_type"`
	Content     map[string]any     `json:"content"`
	Transformed bool               `json:"transformed"`
	Notes       string             `json:"notes,omitempty"`
}

// SwitchTemplate decides whether the section's content can be reused as-is
// under the destination template or must be transformed first, and returns
// the complete next state. On any error the section is left for the caller
// exactly as it was — there is no partial switch.
func (e *Engine) SwitchTemplate(ctx context.Context, section *models.Section, toTemplateID string) (*SwitchResult, error) {
	dest, ok := templates.Get(toTemplateID)
	if !ok {
		return nil, &UnknownTemplateError{TemplateID: toTemplateID}
	}

	// The registry guarantees the id's first segment matches the declared
	// section type, so the metadata is authoritative here.
	if dest.SectionType == section.Type {
		return &SwitchResult{
			TemplateID:  toTemplateID,
			SectionType: section.Type,
			Content:     section.Content,
		}, nil
	}

	raw, err := e.llm.Generate(ctx, switchSystemPrompt, buildSwitchPrompt(section, dest.SectionType))
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	mapped, ok := obj["mappedContent"].(map[string]any)
	if !ok {
		return nil, &ResponseSemanticError{Detail: "missing mappedContent object"}
	}

	normalized, err := schema.Validate(dest.SectionType, mapped)
	if err != nil {
		return nil, err
	}

	return &SwitchResult{
		TemplateID:  toTemplateID,
		SectionType: dest.SectionType,
		Content:     normalized,
		Transformed: true,
		Notes:       stringField(obj, "notes"),
	}, nil
}
